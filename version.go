// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

package slz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Magic is written at the start of every stream, before the version.
// Don't change this, ever.
const Magic = "slz-"

// The version of the wire format written by this library.
const (
	VersionMajor  = 0
	VersionMinor  = 0
	VersionBugfix = 0
)

// Version identifies the library that wrote a stream.
type Version struct {
	Major, Minor, Bugfix uint16
}

// CurrentVersion returns the version compiled into this library.
func CurrentVersion() Version {
	return Version{
		Major:  VersionMajor,
		Minor:  VersionMinor,
		Bugfix: VersionBugfix,
	}
}

// String returns the dotted form, without the NUL terminator.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Bugfix)
}

// ParseVersion parses the dotted "major.minor.bugfix" form.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, errors.Errorf("slz: invalid version %q: need three fragments", s)
	}

	var frags [3]uint16
	for i, p := range parts {
		if p == "" || strings.TrimLeft(p, "0123456789") != "" {
			return Version{}, errors.Errorf("slz: invalid version %q: fragment %d is not a number", s, i)
		}
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return Version{}, errors.Wrapf(err, "slz: invalid version %q", s)
		}
		frags[i] = uint16(n)
	}

	return Version{Major: frags[0], Minor: frags[1], Bugfix: frags[2]}, nil
}

// Header returns the framing header announcing v, NUL terminator included.
func (v Version) Header() []byte {
	b := make([]byte, 0, len(Magic)+len("65535.65535.65535")+1)
	b = append(b, Magic...)
	b = append(b, v.String()...)
	return append(b, 0)
}
