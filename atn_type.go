// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ATN grammar types, matching the values embedded in the serialized ATN
// wire format (spec §6 item 3).
const (
	ATNTypeLexer = iota
	ATNTypeParser
)

// ATNInvalidAltNumber is declared in atn.go, not here.
