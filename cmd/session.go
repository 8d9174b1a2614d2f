package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/etnz/marina"
	"github.com/etnz/marina/renderer"
)

const (
	menuPrompt   = "(I)nventory, (A)dd, (R)emove, (P)ayment, (M)onth, e(X)it : "
	recordPrompt = "Please enter the boat data in CSV format                 : "
	namePrompt   = "Please enter the boat name                               : "
	amountPrompt = "Please enter the amount to be paid                       : "
)

// errEndOfInput is returned by ask when the input is exhausted.
var errEndOfInput = errors.New("end of input")

// session is the interactive menu over a registry. It only prompts and
// reports, every operation is delegated to the registry.
type session struct {
	reg      *marina.Registry
	in       *bufio.Scanner
	out      io.Writer
	currency string
}

func newSession(reg *marina.Registry, in io.Reader, out io.Writer, currency string) *session {
	return &session{
		reg:      reg,
		in:       bufio.NewScanner(in),
		out:      out,
		currency: currency,
	}
}

// run loops over the menu until the user exits or the input ends.
func (s *session) run() {
	for {
		answer, err := s.ask("\n" + menuPrompt)
		if err != nil {
			return
		}
		if answer == "" {
			continue
		}
		option := []rune(answer)[0]
		switch unicode.ToLower(option) {
		case 'i':
			s.inventory()
		case 'a':
			err = s.add()
		case 'r':
			err = s.remove()
		case 'p':
			err = s.payment()
		case 'm':
			s.reg.ChargeMonth()
		case 'x':
			return
		default:
			fmt.Fprintf(s.out, "Invalid option %c\n", option)
		}
		if errors.Is(err, errEndOfInput) {
			return
		}
	}
}

// ask prints the prompt and returns the next input line, space trimmed.
func (s *session) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errEndOfInput
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *session) inventory() {
	fmt.Fprint(s.out, renderer.Lines(s.reg.List(), s.currency))
}

func (s *session) add() error {
	line, err := s.ask(recordPrompt)
	if err != nil {
		return err
	}
	if _, err := s.reg.AddRecord(line); err != nil {
		fmt.Fprintf(s.out, "Could not add the boat: %v\n", err)
	}
	return nil
}

func (s *session) remove() error {
	name, err := s.ask(namePrompt)
	if err != nil {
		return err
	}
	if _, err := s.reg.Remove(name); err != nil {
		fmt.Fprintln(s.out, "No boat with that name")
	}
	return nil
}

func (s *session) payment() error {
	name, err := s.ask(namePrompt)
	if err != nil {
		return err
	}
	if _, err := s.reg.Find(name); err != nil {
		fmt.Fprintln(s.out, "No boat with that name")
		return nil
	}

	text, err := s.ask(amountPrompt)
	if err != nil {
		return err
	}
	amount, err := marina.ParseMoney(text)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid amount %q\n", text)
		return nil
	}

	b, err := s.reg.Pay(name, amount)
	switch {
	case errors.Is(err, marina.ErrOverPayment):
		fmt.Fprintf(s.out, "That is more than the amount owed, %s\n", b.Owed.Display(s.currency))
	case err != nil:
		fmt.Fprintf(s.out, "Could not record the payment: %v\n", err)
	}
	return nil
}
