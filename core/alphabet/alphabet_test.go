package alphabet

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAlphabet(t *testing.T) {
	acgt := NewSet("ACGT")

	for _, ok := range []string{"ACGT", "AAAA", ""} {
		assert.NoError(t, ValidateAlphabet(ok, acgt), ok)
	}

	err := ValidateAlphabet("ACGTxxZ", acgt)
	var ae *AlphabetError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, []byte("xZ"), ae.Symbols)
	assert.Contains(t, err.Error(), `"x" "Z"`)
}

func TestValidateAlphabet_EmptyAlphabet(t *testing.T) {
	var te *TableError
	assert.True(t, errors.As(ValidateAlphabet("A", Set{}), &te))
	assert.NoError(t, ValidateAlphabet("", Set{}))
}

func TestValidateTable(t *testing.T) {
	for _, tb := range []Table{DNA, RNA, IUPAC, Protein, DNA.WithLowercase(), IUPAC.With('-', '\n')} {
		assert.NoError(t, ValidateTable(tb), tb.Name())
	}

	bad, err := FromPairs("bad", "GATx", "CTAG")
	require.NoError(t, err)
	err = ValidateTable(bad)
	var te *TableError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, []byte("C"), te.Missing)

	_, err = FromPairs("short", "GAT", "CT")
	assert.Error(t, err)

	assert.Error(t, ValidateTable(Table{}))
}

func TestBuiltinComplements(t *testing.T) {
	cases := []struct {
		table Table
		in    string
		out   string
	}{
		{DNA, "GATC", "CTAG"},
		{RNA, "GAUC", "CUAG"},
		{IUPAC, "ACGTRYSWKMBDHVN", "TGCAYRSWMKVHDBN"},
	}
	for _, c := range cases {
		for i := 0; i < len(c.in); i++ {
			got, ok := c.table.Complement(c.in[i])
			require.True(t, ok)
			assert.Equal(t, c.out[i], got, "%s: %c", c.table.Name(), c.in[i])
		}
	}
	assert.Equal(t, 20, Protein.Len())
	assert.Equal(t, 15, IUPAC.Len())
	assert.False(t, DNA.Has('a'))
	assert.False(t, DNA.Has('N'))
}

func TestWithLowercase(t *testing.T) {
	lc := DNA.WithLowercase()
	assert.Equal(t, 8, lc.Len())
	c, ok := lc.Complement('g')
	require.True(t, ok)
	assert.Equal(t, byte('c'), c)
	c, _ = lc.Complement('G')
	assert.Equal(t, byte('C'), c)
	// the original table is untouched
	assert.False(t, DNA.Has('g'))
	assert.Equal(t, "ACGTacgt", lc.Keys())
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		tb, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, tb.Name())
	}
	tb, err := Lookup(" IUPAC ")
	require.NoError(t, err)
	assert.Equal(t, "iupac", tb.Name())

	_, err = Lookup("klingon")
	var te *TableError
	assert.True(t, errors.As(err, &te))
	assert.Equal(t, []string{"dna", "iupac", "protein", "rna"}, Names())
}

func TestSetUnion(t *testing.T) {
	s := NewSet("AC").Union(NewSet("CG"))
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains('G'))
	assert.False(t, s.Contains('T'))
}
