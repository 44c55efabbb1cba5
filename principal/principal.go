// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package principal - opaque actor identifiers
//
// A principal is any distinguishable actor that can own assets or be
// authorised for an operation.  The registry only ever compares
// principals for equality; no cryptographic structure is assumed.
// The external form is a Base58 string, checked at the boundary.
package principal

import (
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/registryd/fault"
)

// Principal - comparable identifier for an actor
type Principal string

// Nobody - the zero principal, used for unset fields
const Nobody = Principal("")

// FromString - validate the external Base58 form of a principal
func FromString(s string) (Principal, error) {
	if "" == s {
		return Nobody, fault.InvalidPrincipal
	}
	if _, err := base58.Decode(s); nil != err {
		return Nobody, fault.InvalidPrincipal
	}
	return Principal(s), nil
}

// String - the external form
func (p Principal) String() string {
	return string(p)
}

// IsNobody - check for the unset principal
func (p Principal) IsNobody() bool {
	return Nobody == p
}
