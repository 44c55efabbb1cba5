// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the ownership and marketplace state machine
//
// Per-asset records hold the owner, the subscription expiry, the
// access-level map, the royalty policy, and at most one live auction,
// listing or loan.  The engines over the store enforce:
//
//   - no transfer and no listing while an auction is active
//   - monotonically increasing bids, earlier bidders refunded in full
//   - an asset sold through an auction can never be listed again
//   - settlement splits a payment exactly between royalty recipient
//     and seller, with any excess returned to the buyer
//   - subscription extension is additive to the current expiry
//
// One mutex serialises all operations; every guard runs before the
// first mutation so a rejected operation leaves no trace, and every
// operation reads the clock exactly once.
package registry
