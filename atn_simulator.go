// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// BaseATNSimulator is embedded by LexerATNSimulator and ParserATNSimulator:
// both share the same ATN and the same process-wide PredictionContextCache
// (spec §5), and both need a per-call merge cache that is NOT shared across
// calls — so it is constructed fresh by the caller and passed down rather
// than stored here.
type BaseATNSimulator struct {
	atn          *ATN
	sharedContextCache *PredictionContextCache
}

func NewBaseATNSimulator(atn *ATN, sharedContextCache *PredictionContextCache) *BaseATNSimulator {
	if sharedContextCache == nil {
		sharedContextCache = NewPredictionContextCache()
	}
	return &BaseATNSimulator{atn: atn, sharedContextCache: sharedContextCache}
}

func (b *BaseATNSimulator) GetATN() *ATN { return b.atn }

func (b *BaseATNSimulator) GetSharedContextCache() *PredictionContextCache {
	return b.sharedContextCache
}

// GetCachedContext interns ctx through the shared cache, used by both
// simulators right before freezing a config set (spec §4.2/§4.3).
func (b *BaseATNSimulator) GetCachedContext(ctx PredictionContext) PredictionContext {
	if b.sharedContextCache == nil {
		return ctx
	}
	visited := make(map[PredictionContext]PredictionContext)
	return GetCachedContext(ctx, b.sharedContextCache, visited)
}
