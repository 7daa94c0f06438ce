// Command hashpw creates and checks PBKDF2 password hash records from the
// terminal.
//
// Usage:
//
//	hashpw hash [-iterations N]
//	hashpw verify -record <record>
//
// The password is read from the terminal without echo, or from the first
// line of stdin when stdin is not a terminal.
//
// Exit codes: 0 success, 1 password does not match, 2 corrupt record,
// 3 usage or runtime error.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-app-scaffold/internal/crypto"
	"golang.org/x/term"
)

const (
	exitOK = iota
	exitInvalid
	exitCorrupt
	exitError
)

var errEmptyPassword = errors.New("empty password")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitError
	}

	switch args[0] {
	case "hash":
		return runHash(args[1:], stdin, stdout, stderr)
	case "verify":
		return runVerify(args[1:], stdin, stdout, stderr)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		usage(stderr)
		return exitError
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  hashpw hash [-iterations N]")
	fmt.Fprintln(w, "  hashpw verify -record <record> [-max-iterations N]")
}

func runHash(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hash", flag.ContinueOnError)
	fs.SetOutput(stderr)
	iterations := fs.Int("iterations", crypto.MinIterations, "PBKDF2 iteration count")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	hasher, err := crypto.NewPBKDF2Hasher(*iterations, max(*iterations, crypto.DefaultMaxIterations))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	password, err := readPassword(stdin, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error reading password: %v\n", err)
		return exitError
	}

	record, err := hasher.Hash(password)
	if err != nil {
		fmt.Fprintf(stderr, "error hashing password: %v\n", err)
		return exitError
	}

	fmt.Fprintln(stdout, record.String())
	return exitOK
}

func runVerify(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	record := fs.String("record", "", "hash record to check the password against")
	maxIterations := fs.Int("max-iterations", crypto.DefaultMaxIterations, "highest iteration count accepted in the record")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if *record == "" {
		fmt.Fprintln(stderr, "error: -record is required")
		return exitError
	}

	// a corrupt record is reported before asking for the password
	parsed, err := crypto.ParseHashRecord(*record)
	if err == nil {
		err = parsed.CheckBounds(*maxIterations)
	}
	if err != nil {
		fmt.Fprintf(stderr, "corrupt record: %v\n", err)
		return exitCorrupt
	}

	password, err := readPassword(stdin, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error reading password: %v\n", err)
		return exitError
	}

	// the iteration count only matters for new records
	hasher, err := crypto.NewPBKDF2Hasher(crypto.MinIterations, max(crypto.MinIterations, *maxIterations))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	valid, err := hasher.Verify(password, *record)
	if err != nil {
		fmt.Fprintf(stderr, "corrupt record: %v\n", err)
		return exitCorrupt
	}

	if !valid {
		fmt.Fprintln(stdout, "invalid")
		return exitInvalid
	}

	fmt.Fprintln(stdout, "valid")
	return exitOK
}

// readPassword reads without echo when stdin is a terminal and falls back to
// the first line of stdin otherwise.
func readPassword(stdin io.Reader, prompt io.Writer) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", err
		}
		if len(b) == 0 {
			return "", errEmptyPassword
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errEmptyPassword
	}
	return line, nil
}
