package stralg

import "testing"

func TestSimplifyCigar(t *testing.T) {
	testCases := []struct {
		ops  []byte
		want string
	}{
		{nil, ""},
		{[]byte("M"), "1M"},
		{[]byte("MMMID"), "3M1I1D"},
		{[]byte("MIMIM"), "1M1I1M1I1M"},
		{[]byte("DDD"), "3D"},
	}
	for _, tc := range testCases {
		got := simplifyCigar(tc.ops)
		if got != tc.want {
			t.Errorf("simplifyCigar(%q) = %q, want %q", tc.ops, got, tc.want)
		}
	}
}

func TestAppendOpDoesNotAliasAcrossBranches(t *testing.T) {
	base := appendOp(nil, 'M')
	branchA := appendOp(base, 'I')
	branchB := appendOp(base, 'D')

	if branchA[len(branchA)-1] != 'I' || branchB[len(branchB)-1] != 'D' {
		t.Fatalf("branches overwrote each other: A=%q B=%q", branchA, branchB)
	}
}
