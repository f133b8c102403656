package storage

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/pixil98/go-errors"
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9-]*$`)

// currentVersion is the newest asset format this build reads.
const currentVersion = 1

type ValidatingSpec interface {
	Validate() error
}

type Identifier string

func (id Identifier) String() string {
	return string(id)
}

// Asset is the on-disk envelope around a spec.
type Asset[T ValidatingSpec] struct {
	Version    uint       `json:"version"`
	Identifier Identifier `json:"id"`
	Spec       T          `json:"spec"`
}

func (a *Asset[T]) Id() Identifier {
	return a.Identifier
}

func (a *Asset[T]) Validate() error {
	el := errors.NewErrorList()

	if a.Version == 0 {
		el.Add(fmt.Errorf("version must be set"))
	} else if a.Version > currentVersion {
		el.Add(fmt.Errorf("version %d is newer than supported version %d", a.Version, currentVersion))
	}

	if a.Identifier == "" {
		el.Add(fmt.Errorf("id must be set"))
	}

	if !identifierPattern.MatchString(a.Identifier.String()) {
		el.Add(fmt.Errorf("id must be alphanumeric"))
	}

	if specMissing(a.Spec) {
		el.Add(fmt.Errorf("spec must be set"))
	} else {
		el.Add(a.Spec.Validate())
	}

	return el.Err()
}

func specMissing[T ValidatingSpec](spec T) bool {
	v := reflect.ValueOf(spec)
	if !v.IsValid() {
		return true
	}
	return v.Kind() == reflect.Pointer && v.IsNil()
}
