package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/baseldt/lms/core/course"
	"github.com/baseldt/lms/core/guard"
)

// open prints the guard decision for a route, then where the dashboard redirector leads.
func (cli *commandLine) open(method, path string) error {
	method = strings.ToUpper(method)
	route, _, ok := guard.Lookup(method, path)
	if !ok {
		return errors.Errorf("%s %s: no such route", method, path)
	}

	ident := cli.store.Identity()
	d := route.Check(ident)
	if !d.Allowed() {
		fmt.Fprintf(cli.out, "%s -> %s\n", d.Outcome, d.Location)
		return nil
	}
	if route.Path == "/dashboard" {
		if st := guard.Dashboard(ident); !st.Loading {
			fmt.Fprintf(cli.out, "%s -> %s\n", d.Outcome, st.Location)
			return nil
		}
	}
	fmt.Fprintln(cli.out, d.Outcome)
	return nil
}

func (cli *commandLine) courses(search, category string) {
	found := cli.catalog.Browse(course.Filter{Search: search, Category: category})
	if len(found) == 0 {
		fmt.Fprintln(cli.out, "No courses found")
		return
	}
	for _, c := range found {
		fmt.Fprintf(cli.out, "%s. %s [%s] by %s, $%.2f\n", c.ID, c.Title, c.Category, c.Instructor, c.Price)
	}
}
