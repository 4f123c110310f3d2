package base

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/hashicorp-forge/soundboard/pkg/snowflake"
)

// FlagSet wraps flag.FlagSet with help rendering and presence checks.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f and silences its own usage output; commands print
// their Help instead.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(io.Discard)
	f.Usage = func() {}
	return &FlagSet{FlagSet: f}
}

// Help renders the registered flags for a command's help text.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s", fl.Name)
		if fl.DefValue != "" && fl.DefValue != "false" && fl.DefValue != "0" {
			fmt.Fprintf(&b, "=%s", fl.DefValue)
		}
		fmt.Fprintf(&b, "\n      %s\n", fl.Usage)
	})
	return strings.TrimRight(b.String(), "\n")
}

// IsSet reports whether the flag was given on the command line, even if it
// was given its default value.
func (f *FlagSet) IsSet(name string) bool {
	set := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

// FlagName returns the flag name for a wire field, e.g. "max_uses" becomes
// "max-uses".
func FlagName(field string) string {
	return strcase.ToKebab(field)
}

// IDVar defines a flag holding an identifier of kind T.
func IDVar[T snowflake.ID](f *FlagSet, p *T, name, usage string) {
	f.Var(&idValue[T]{p: p}, name, usage)
}

type idValue[T snowflake.ID] struct {
	p *T
}

func (v *idValue[T]) String() string {
	if v.p == nil || *v.p == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(*v.p), 10)
}

func (v *idValue[T]) Set(s string) error {
	id, err := snowflake.Parse[T](s)
	if err != nil {
		return err
	}
	*v.p = id
	return nil
}
