package lookup

import "testing"

// FORBIDDENWORD must block decompounding paths too (spec.md §4.5), not just
// the plain whole-word check Check starts with — so a whole input that isn't
// itself a dictionary entry, but whose own affix-form resolves to a
// forbidden root, must be rejected even when its pieces would otherwise
// compound cleanly.
func TestCompoundRejectsForbiddenWholeInput(t *testing.T) {
	e := build(t, "SET UTF-8\nCOMPOUNDFLAG C\nCOMPOUNDMIN 3\nFORBIDDENWORD !\nSFX R Y 1\nSFX R 0 r .\n",
		"3\nfoo/C\nbar/C\nfooba/!R\n")
	opts := DefaultOptions()

	// foo+bar would otherwise be a valid compound; without the
	// FORBIDDENWORD guard in compoundPartsByFlags this would report true.
	if e.Check("foobar", opts) {
		t.Error(`Check("foobar") = true, want false (whole-input affix-form "fooba"+R resolves to a forbidden root)`)
	}
}

// compoundpermitflag: a compound-begin part's suffix (and a compound-end
// part's prefix, by symmetry) needs COMPOUNDPERMITFLAG on the affix itself;
// without it the split is rejected even though the bare roots would compound
// fine on their own.
func TestCompoundPermitFlagGatesAffixedParts(t *testing.T) {
	e := build(t, "SET UTF-8\nCOMPOUNDFLAG C\nCOMPOUNDMIN 3\nCOMPOUNDPERMITFLAG P\n"+
		"SFX S Y 1\nSFX S 0 s .\nSFX T Y 1\nSFX T 0 ing/P .\n",
		"3\nrun/CS\nbar/C\nwalk/CT\n")
	opts := DefaultOptions()

	if e.Check("runsbar", opts) {
		t.Error(`Check("runsbar") = true, want false (suffix S lacks COMPOUNDPERMITFLAG)`)
	}
	if !e.Check("walkingbar", opts) {
		t.Error(`Check("walkingbar") = false, want true (suffix T carries COMPOUNDPERMITFLAG)`)
	}
	if !e.Check("runbar", opts) {
		t.Error(`Check("runbar") = false, want true (unaffixed roots still compound)`)
	}
}

// simplifiedtriple: a compound boundary may drop a tripled letter; the
// splitter must also try the left part with that letter duplicated back in
// before rejecting the split, while keeping the yielded text as written.
func TestCompoundSimplifiedTriple(t *testing.T) {
	e := build(t, "SET UTF-8\nCOMPOUNDFLAG C\nCOMPOUNDMIN 3\nSIMPLIFIEDTRIPLE\n",
		"2\nschiff/C\nfahrt/C\n")
	opts := DefaultOptions()

	// "schiff" + "fahrt" would literally triple the "f" at the boundary
	// ("schifffahrt"); the simplified spelling drops one "f".
	if !e.Check("schiffahrt", opts) {
		t.Error(`Check("schiffahrt") = false, want true (SIMPLIFIEDTRIPLE should restore the dropped "f")`)
	}
	if !e.Check("schifffahrt", opts) {
		t.Error(`Check("schifffahrt") = false, want true (literal spelling with the tripled "f" still checks out)`)
	}
}
