package differ

import (
	"encoding/json"

	"github.com/aleister1102/goldencopy/internal/jsonvalue"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/wI2L/jsondiff"
)

// PatchProcessor produces patch-style companions to the scored diffs: a
// line-mode diff-match-patch patch, a unified diff and an RFC 6902 patch.
type PatchProcessor struct {
	dmp    *diffmatchpatch.DiffMatchPatch
	config DiffConfig
}

// NewPatchProcessor creates a new patch processor
func NewPatchProcessor(config DiffConfig) *PatchProcessor {
	return &PatchProcessor{
		dmp:    diffmatchpatch.New(),
		config: config,
	}
}

// LinePatch returns the patch text turning text1 into text2, computed line
// by line. Identical texts yield "".
func (pp *PatchProcessor) LinePatch(text1, text2 string) string {
	chars1, chars2, lines := pp.dmp.DiffLinesToChars(text1, text2)
	diffs := pp.dmp.DiffMain(chars1, chars2, false)
	diffs = pp.dmp.DiffCharsToLines(diffs, lines)

	if pp.config.EnableSemanticCleanup {
		diffs = pp.dmp.DiffCleanupSemantic(diffs)
	}

	patches := pp.dmp.PatchMake(text1, diffs)
	return pp.dmp.PatchToText(patches)
}

// UnifiedDiff returns a unified diff between two texts, or "" when they are
// identical.
func (pp *PatchProcessor) UnifiedDiff(reference, candidate string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(reference),
		B:        difflib.SplitLines(candidate),
		FromFile: "reference",
		ToFile:   "candidate",
		Context:  pp.config.ContextLines,
	}
	return difflib.GetUnifiedDiffString(diff)
}

// JSONPatch returns the RFC 6902 operations turning reference into candidate.
func (pp *PatchProcessor) JSONPatch(reference, candidate jsonvalue.Value) (json.RawMessage, error) {
	patch, err := jsondiff.Compare(jsonvalue.ToInterface(reference), jsonvalue.ToInterface(candidate))
	if err != nil {
		return nil, err
	}
	if len(patch) == 0 {
		return json.RawMessage("[]"), nil
	}

	data, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}
