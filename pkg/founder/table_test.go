package founder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/founderset/walkgfa/pkg/gfa"
)

func expand(t *testing.T, table string, padWidth int) string {
	t.Helper()
	g := gfa.NewGraph()
	require.NoError(t, ExpandTable(strings.NewReader(table), padWidth, g))
	var out strings.Builder
	require.NoError(t, g.Write(&out))
	return out.String()
}

func TestExpandTable(t *testing.T) {
	assert := assert.New(t)

	out := expand(t, "fam\nc1\t>5>5<9\n", DefaultPadWidth)
	assert.Equal(`H	VN:Z:1.0
S	5	*
S	9	*
L	5	+	5	-	0M
L	5	-	9	-	0M
P	fam_000_c1	5+,5-,9-	*
`, out)
}

func TestTemplateSwitchFlattening(t *testing.T) {
	assert := assert.New(t)

	// groups [[A],[B,C],[D]]: the walk opens forward, every copied step
	// after it is reverse, switch anchors included
	out := expand(t, "fam\nc1\t>A>B<C>D\n", DefaultPadWidth)
	assert.Contains(out, "P\tfam_000_c1\tA+,B-,C-,D-\t*\n")
}

func TestExpandTableFamilies(t *testing.T) {
	assert := assert.New(t)

	table := "founder_seq1\n" +
		"NA12878.1\t>5>9\n" +
		"NA12878.2\t>5>9\n" +
		"founder_seq2\n" +
		"NA19240.1\t>9>5\n"
	out := expand(t, table, DefaultPadWidth)

	// the candidate index resets per family; the shared adjacency (5+,9-)
	// is emitted once across the whole table
	assert.Contains(out, "P\tfounder_seq1_000_NA12878.1\t5+,9-\t*\n")
	assert.Contains(out, "P\tfounder_seq1_001_NA12878.2\t5+,9-\t*\n")
	assert.Contains(out, "P\tfounder_seq2_000_NA19240.1\t9+,5-\t*\n")
	assert.Equal(1, strings.Count(out, "L\t5\t+\t9\t-\t0M"))
}

func TestExpandTablePadWidth(t *testing.T) {
	assert := assert.New(t)

	out := expand(t, "fam\nc1\t>5\nc2\t>9\n", 1)
	assert.Contains(out, "P\tfam_0_c1\t5+\t*\n")
	assert.Contains(out, "P\tfam_1_c2\t9+\t*\n")
}

func TestExpandTableDeterministic(t *testing.T) {
	// mixed numeric and alphanumeric segment ids exercise the total
	// emission order
	table := "fam\n" +
		"c1\t>12>7<3\n" +
		"c2\t>3>7<12\n" +
		"c3\t>12>7<3\n" +
		"c4\t>1x>2<10\n"

	first := expand(t, table, DefaultPadWidth)
	assert.Contains(t, first, "S\t2\t*\nS\t3\t*\nS\t7\t*\nS\t10\t*\nS\t12\t*\nS\t1x\t*\n")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, expand(t, table, DefaultPadWidth))
	}
}

func TestExpandTableErrors(t *testing.T) {
	kases := []struct {
		name  string
		input string
	}{
		{name: "row before family header", input: "c1\t>5\n"},
		{name: "empty walk column", input: "fam\nc1\t\n"},
		{name: "walk without leading marker", input: "fam\nc1\t5>9\n"},
	}

	for _, kase := range kases {
		t.Run(kase.name, func(t *testing.T) {
			g := gfa.NewGraph()
			err := ExpandTable(strings.NewReader(kase.input), DefaultPadWidth, g)
			assert.Error(t, err)
		})
	}
}
