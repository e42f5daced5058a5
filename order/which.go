// Package order provides a vocabulary for the direction of an
// ordering, shared by the heap comparators and the operators built on
// them.
package order

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Which indicates whether an ordering is ascending or descending.
type Which bool

const (
	Asc  Which = false
	Desc Which = true
)

// Parse converts "asc" or "desc" (case insensitive) to the
// corresponding Which.
func Parse(s string) (Which, error) {
	switch strings.ToLower(s) {
	case "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return Asc, fmt.Errorf("unknown order: %q", s)
}

func (w Which) String() string {
	if w == Desc {
		return "desc"
	}
	return "asc"
}

func (w Which) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

func (w *Which) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	which, err := Parse(s)
	if err != nil {
		return err
	}
	*w = which
	return nil
}
