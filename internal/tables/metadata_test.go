package tables

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMetadata(t *testing.T) {
	src := `index,business,client,year,month,day
1,B1,C1,2024,3,15
2,B1,C2,2024,4,1
`
	metadata, err := LoadMetadata(strings.NewReader(src))
	require.NoError(t, err)

	row, err := metadata.Get(1)
	require.NoError(t, err)
	assert.Equal(t, RawMetadata{Business: "B1", Client: "C1", Year: 2024, Month: 3, Day: 15}, row)

	row, err = metadata.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "C2", row.Client)
}

func TestMetadataGetMissingSequence(t *testing.T) {
	src := "index,business,client,year,month,day\n1,B1,C1,2024,3,15\n"
	metadata, err := LoadMetadata(strings.NewReader(src))
	require.NoError(t, err)

	_, err = metadata.Get(9)
	assert.ErrorIs(t, err, ErrMissingInvoice)
}

func TestLoadMetadataBadValues(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"non-numeric sequence", "one,B1,C1,2024,3,15"},
		{"non-numeric year", "1,B1,C1,MMXXIV,3,15"},
		{"non-numeric month", "1,B1,C1,2024,March,15"},
		{"non-numeric day", "1,B1,C1,2024,3,ides"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "index,business,client,year,month,day\n" + tt.row + "\n"
			_, err := LoadMetadata(strings.NewReader(src))
			assert.ErrorIs(t, err, ErrMalformedSource)
		})
	}
}
