package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/baseldt/lms/core"
	"github.com/baseldt/lms/core/user"
)

func (cli *commandLine) login(ctx context.Context, email, pwd string) error {
	ok, err := cli.store.Login(email, pwd).WaitContext(ctx)
	if err != nil {
		return errors.Wrap(err, "waiting for login")
	}
	if !ok {
		return errFailed
	}
	cli.whoami()
	return nil
}

func (cli *commandLine) register(ctx context.Context, name, email, pwd, confirm, role string) error {
	nu := user.NewUser{
		Name:            name,
		Email:           email,
		Password:        pwd,
		PasswordConfirm: confirm,
		Role:            role,
	}
	if err := nu.Validate(cli.validate); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			return fieldsError(core.TranslateFields(vErrs, cli.translator))
		}
		return err
	}

	ok, err := cli.store.Register(nu.Name, nu.Email, nu.Password, nu.ParsedRole()).WaitContext(ctx)
	if err != nil {
		return errors.Wrap(err, "waiting for registration")
	}
	if !ok {
		return errFailed
	}
	cli.whoami()
	return nil
}

func (cli *commandLine) whoami() {
	ident := cli.store.Identity()
	if ident == nil {
		fmt.Fprintln(cli.out, "not logged in")
		return
	}
	fmt.Fprintf(cli.out, "%s <%s> %s (id %s)\n", ident.Name, ident.Email, ident.Role.Label(), ident.ID)
}

// fieldsError sorts field errors by field name.
func fieldsError(fldErrs map[string]string) error {
	flds := make([]core.FieldError, 0, len(fldErrs))
	for fld, msg := range fldErrs {
		flds = append(flds, core.FieldError{Field: fld, Error: msg})
	}
	sort.Slice(flds, func(i, j int) bool { return flds[i].Field < flds[j].Field })
	return core.NewValidationError(nil, flds...)
}
