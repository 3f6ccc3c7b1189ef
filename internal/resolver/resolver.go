// Package resolver produces a single Haxe version reference from the
// three-tier precedence chain: explicit flag, MASK_VERSION environment
// override, mask file. The chain is an ordered list of mechanisms tried
// in sequence and short-circuited on the first hit, so precedence changes
// stay localized.
package resolver

import (
	"errors"
	"fmt"
	"os"

	"mask/internal/maskfile"
	"mask/internal/store"
)

// EnvVersion overrides the mask file when set and non-empty.
const EnvVersion = "MASK_VERSION"

// ErrUnresolved reports that no mechanism yielded a version reference.
// There is no fallback to a default version; unresolved means unresolved.
var ErrUnresolved = errors.New("no haxe version could be resolved")

// Context carries the per-invocation inputs to resolution. The zero value
// resolves from the environment and the default mask file in the working
// directory.
type Context struct {
	// Explicit is the value of the -e flag, empty when the flag is unset.
	// It wins unconditionally and is not validated against the store here;
	// existence is checked lazily when the reference is used.
	Explicit string

	// MaskfilePath overrides the default .mask location.
	MaskfilePath string

	// LookupEnv defaults to os.LookupEnv; tests substitute their own.
	LookupEnv func(string) (string, bool)
}

// Mechanism is one strategy in the precedence chain.
type Mechanism struct {
	Name   string
	Lookup func() (ref string, ok bool, err error)
}

// Mechanisms returns the precedence chain in order.
func (c Context) Mechanisms() []Mechanism {
	lookupEnv := c.LookupEnv
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	maskfilePath := c.MaskfilePath
	if maskfilePath == "" {
		maskfilePath = maskfile.DefaultName
	}

	return []Mechanism{
		{
			Name: "explicit flag",
			Lookup: func() (string, bool, error) {
				return c.Explicit, c.Explicit != "", nil
			},
		},
		{
			Name: EnvVersion + " environment",
			Lookup: func() (string, bool, error) {
				value, ok := lookupEnv(EnvVersion)
				if !ok || value == "" {
					return "", false, nil
				}
				return value, true, nil
			},
		},
		{
			Name: fmt.Sprintf("mask file %s", maskfilePath),
			Lookup: func() (string, bool, error) {
				ref, found, err := maskfile.Read(maskfilePath)
				if err != nil {
					return "", false, err
				}
				if !found || ref == "" {
					return "", false, nil
				}
				return ref, true, nil
			},
		},
	}
}

// Resolved is the outcome of a successful resolution.
type Resolved struct {
	Version string
	Source  string
}

// Resolve walks the chain and returns the first reference found. Later
// mechanisms are never consulted once one hits.
func (c Context) Resolve() (Resolved, error) {
	for _, mech := range c.Mechanisms() {
		ref, ok, err := mech.Lookup()
		if err != nil {
			return Resolved{}, err
		}
		if ok {
			return Resolved{Version: ref, Source: mech.Name}, nil
		}
	}
	return Resolved{}, ErrUnresolved
}

// Report describes one mechanism's standalone outcome for check mode.
type Report struct {
	Mechanism string
	Value     string
	Set       bool
	Installed bool
}

// Inspect evaluates every mechanism independently, with no precedence
// applied, and reports whether each yields a value and whether that value
// names an installed version. A missing mechanism is not an error; the
// report is advisory.
func (c Context) Inspect(st store.Store) ([]Report, error) {
	mechs := c.Mechanisms()
	reports := make([]Report, 0, len(mechs))
	for _, mech := range mechs {
		ref, ok, err := mech.Lookup()
		if err != nil {
			return nil, err
		}
		report := Report{Mechanism: mech.Name, Value: ref, Set: ok}
		if ok {
			report.Installed = st.Exists(ref)
		}
		reports = append(reports, report)
	}
	return reports, nil
}
