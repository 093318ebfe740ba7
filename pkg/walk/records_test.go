package walk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/founderset/walkgfa/pkg/gfa"
)

func TestReadRecordsTabForm(t *testing.T) {
	assert := assert.New(t)

	records, err := ReadRecords(strings.NewReader("hapA\t>12>7<7<3\nhapB\t<3>1\n"))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal("hapA", records[0].Name)
	assert.Equal([]gfa.OrientedSegment{
		{ID: "12", Strand: gfa.Forward},
		{ID: "7", Strand: gfa.Forward},
		{ID: "7", Strand: gfa.Reverse},
		{ID: "3", Strand: gfa.Reverse},
	}, records[0].Steps)
	assert.Equal("hapB", records[1].Name)
}

func TestReadRecordsBareNameForm(t *testing.T) {
	assert := assert.New(t)

	input := "founder_seq1\n>12>7\n<7<3\nfounder_seq2\n>5\n"
	records, err := ReadRecords(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	// continuation lines append to the current record
	assert.Equal("founder_seq1", records[0].Name)
	assert.Len(records[0].Steps, 4)
	assert.Equal("founder_seq2", records[1].Name)
	assert.Len(records[1].Steps, 1)
}

func TestReadRecordsErrors(t *testing.T) {
	kases := []struct {
		name  string
		input string
	}{
		{name: "walk before any name", input: ">12>7\n"},
		{name: "consecutive names leave an empty record", input: "hapA\nhapB\n>1\n"},
		{name: "trailing empty record", input: "hapA\t>1\nhapB\n"},
		{name: "malformed walk", input: "hapA\t>12>>3\n"},
	}

	for _, kase := range kases {
		t.Run(kase.name, func(t *testing.T) {
			_, err := ReadRecords(strings.NewReader(kase.input))
			assert.Error(t, err)
		})
	}
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	g := gfa.NewGraph()
	require.NoError(t, Decode(strings.NewReader("hapA\t>12>7<7<3\n"), g))

	var out strings.Builder
	require.NoError(t, g.Write(&out))

	assert.Equal(`H	VN:Z:1.0
S	3	*
S	7	*
S	12	*
L	7	+	7	-	0M
L	7	-	3	-	0M
L	12	+	7	+	0M
P	hapA	12+,7+,7-,3-	*
`, out.String())
}

func TestDecodeSharedLinks(t *testing.T) {
	assert := assert.New(t)

	// both walks traverse (1+,2+); the link set must carry it once
	g := gfa.NewGraph()
	require.NoError(t, Decode(strings.NewReader("a\t>1>2\nb\t>1>2>3\n"), g))

	var out strings.Builder
	require.NoError(t, g.Write(&out))
	assert.Equal(1, strings.Count(out.String(), "L\t1\t+\t2\t+\t0M"))
	assert.Equal(2, strings.Count(out.String(), "\nP\t"))
}

func TestDecodeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	// extract output feeds decode; names, order and strands survive
	paths, err := gfa.ReadPaths(strings.NewReader("P\tH1\t12+,7+,7-,3-\t*\nP\tH2\t3+\t*\n"))
	require.NoError(t, err)

	var walks strings.Builder
	count, err := Extract(strings.NewReader("P\tH1\t12+,7+,7-,3-\t*\nP\tH2\t3+\t*\n"),
		func(string) bool { return true }, &walks)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	records, err := ReadRecords(strings.NewReader(walks.String()))
	require.NoError(t, err)
	require.Len(t, records, 2)
	for i, rec := range records {
		assert.Equal(paths[i].Name, rec.Name)
		assert.Equal(paths[i].Steps, rec.Steps)
	}
}
