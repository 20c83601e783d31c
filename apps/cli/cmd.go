package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"golang.org/x/term"

	"github.com/baseldt/lms/core"
	"github.com/baseldt/lms/core/course"
	"github.com/baseldt/lms/core/session"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
	// errFailed reports an operation whose reason was already printed as a notification.
	errFailed = errors.New("operation failed")
)

type commandLine struct {
	store      *session.Store
	catalog    *course.Catalog
	validate   *validator.Validate
	translator ut.Translator
	out        io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -email EMAIL - log in (the password is prompted next)")
	fmt.Fprintln(cli.out, "  register -name NAME -email EMAIL -role student|instructor - create an account and log in")
	fmt.Fprintln(cli.out, "  logout - end the session")
	fmt.Fprintln(cli.out, "  whoami - print the current user")
	fmt.Fprintln(cli.out, "  open [-method METHOD] PATH - print what the route guard decides for PATH")
	fmt.Fprintln(cli.out, "  courses [-search TEXT] [-category CATEGORY] - browse the published courses")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ContinueOnError)
	loginEmail := loginCmd.String("email", "", "The user's email. The password will be prompted next.")

	registerCmd := flag.NewFlagSet("register", flag.ContinueOnError)
	registerName := registerCmd.String("name", "", "The user's full name.")
	registerEmail := registerCmd.String("email", "", "The user's email.")
	registerRole := registerCmd.String("role", "student", "student or instructor.")

	openCmd := flag.NewFlagSet("open", flag.ContinueOnError)
	openMethod := openCmd.String("method", http.MethodGet, "The request method.")

	coursesCmd := flag.NewFlagSet("courses", flag.ContinueOnError)
	coursesSearch := coursesCmd.String("search", "", "Matches titles and descriptions, case-insensitively.")
	coursesCategory := coursesCmd.String("category", course.CategoryAll, "Exact category.")

	switch args[1] {
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginEmail == "" {
			loginCmd.Usage()
			return errHelp
		}
		pwd, err := cli.prompt("Enter password:")
		if err != nil {
			return err
		}
		if pwd == "" {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(ctx, *loginEmail, pwd)

	case "register":
		if err := registerCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *registerName == "" || *registerEmail == "" {
			registerCmd.Usage()
			return errHelp
		}
		pwd, err := cli.prompt("Enter password:")
		if err != nil {
			return err
		}
		confirm, err := cli.prompt("Confirm password:")
		if err != nil {
			return err
		}
		return cli.register(ctx, *registerName, *registerEmail, pwd, confirm, *registerRole)

	case "logout":
		cli.store.Logout(ctx)
		return nil

	case "whoami":
		cli.whoami()
		return nil

	case "open":
		if err := openCmd.Parse(args[2:]); err != nil {
			return err
		}
		if openCmd.NArg() != 1 {
			openCmd.Usage()
			return errHelp
		}
		return cli.open(*openMethod, openCmd.Arg(0))

	case "courses":
		if err := coursesCmd.Parse(args[2:]); err != nil {
			return err
		}
		cli.courses(*coursesSearch, *coursesCategory)
		return nil

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) prompt(label string) (string, error) {
	fmt.Fprint(cli.out, label)
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}

// printNotifier writes notifications the way a toast would show them.
func printNotifier(w io.Writer) core.Notifier {
	return core.NotifierFunc(func(n core.Notification) {
		mark := "*"
		if n.Severity == core.SeverityDestructive {
			mark = "!"
		}
		fmt.Fprintf(w, "%s %s: %s\n", mark, n.Title, n.Description)
	})
}
