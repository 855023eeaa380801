// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ATNDeserializationOptions configures how ATNDeserializer.Deserialize
// validates and augments the ATN it reads (SPEC_FULL.md §3 Configuration).
// Once handed to a deserializer call it is not mutated.
type ATNDeserializationOptions struct {
	readOnly                           bool
	verifyATN                          bool
	generateRuleBypassTransitions      bool
}

func NewATNDeserializationOptions(base *ATNDeserializationOptions) *ATNDeserializationOptions {
	if base != nil {
		copy := *base
		copy.readOnly = false
		return &copy
	}
	return &ATNDeserializationOptions{verifyATN: true}
}

func DefaultATNDeserializationOptions() *ATNDeserializationOptions {
	return defaultATNDeserializationOptions
}

var defaultATNDeserializationOptions = &ATNDeserializationOptions{verifyATN: true, readOnly: true}

func (o *ATNDeserializationOptions) GetVerifyATN() bool { return o.verifyATN }
func (o *ATNDeserializationOptions) SetVerifyATN(b bool) {
	o.throwIfReadOnly()
	o.verifyATN = b
}

func (o *ATNDeserializationOptions) GetGenerateRuleBypassTransitions() bool {
	return o.generateRuleBypassTransitions
}
func (o *ATNDeserializationOptions) SetGenerateRuleBypassTransitions(b bool) {
	o.throwIfReadOnly()
	o.generateRuleBypassTransitions = b
}

func (o *ATNDeserializationOptions) throwIfReadOnly() {
	if o.readOnly {
		panic(NewIllegalStateError("cannot mutate a read-only ATNDeserializationOptions"))
	}
}
