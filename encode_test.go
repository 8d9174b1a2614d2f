package marina

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDecodeBoat(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		want     Boat
		wantOwed string
	}{
		{
			name:     "slip",
			line:     "Frigate,40,slip,18,500.00",
			want:     Boat{Name: "Frigate", Length: 40, Location: Slip{Number: 18}},
			wantOwed: "500.00",
		},
		{
			name:     "land",
			line:     "Big Brother,20,land,B,0.00",
			want:     Boat{Name: "Big Brother", Length: 20, Location: Land{Bay: 'B'}},
			wantOwed: "0.00",
		},
		{
			name:     "land keeps the first letter only",
			line:     "Moby,12,land,Bay,1.50",
			want:     Boat{Name: "Moby", Length: 12, Location: Land{Bay: 'B'}},
			wantOwed: "1.50",
		},
		{
			name:     "trailer",
			line:     "Sea Sprite,22,trailor,ABC123,12.25",
			want:     Boat{Name: "Sea Sprite", Length: 22, Location: Trailer{Tag: "ABC123"}},
			wantOwed: "12.25",
		},
		{
			name:     "trailer tag is truncated",
			line:     "Sea Sprite,22,trailor,ABCDEFGH,12.25",
			want:     Boat{Name: "Sea Sprite", Length: 22, Location: Trailer{Tag: "ABCDEF"}},
			wantOwed: "12.25",
		},
		{
			name:     "storage",
			line:     "Dinghy,8,storage,7,3.10",
			want:     Boat{Name: "Dinghy", Length: 8, Location: Storage{Number: 7}},
			wantOwed: "3.10",
		},
		{
			name:     "unknown kind falls back to storage",
			line:     "Dinghy,8,shed,7,3.10",
			want:     Boat{Name: "Dinghy", Length: 8, Location: Storage{Number: 7}},
			wantOwed: "3.10",
		},
		{
			name:     "trailing newline and spaces",
			line:     " Frigate , 40 ,slip, 18 ,500.00\r\n",
			want:     Boat{Name: "Frigate", Length: 40, Location: Slip{Number: 18}},
			wantOwed: "500.00",
		},
		{
			name:     "amount is rounded to cents",
			line:     "Frigate,40,slip,18,500.005",
			want:     Boat{Name: "Frigate", Length: 40, Location: Slip{Number: 18}},
			wantOwed: "500.01",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeBoat(tc.line)
			if err != nil {
				t.Fatalf("DecodeBoat(%q) returned an unexpected error: %v", tc.line, err)
			}
			if got.Name != tc.want.Name || got.Length != tc.want.Length || got.Location != tc.want.Location {
				t.Errorf("DecodeBoat(%q) = %+v, want %+v", tc.line, got, tc.want)
			}
			if got.Owed.String() != tc.wantOwed {
				t.Errorf("DecodeBoat(%q).Owed = %s, want %s", tc.line, got.Owed, tc.wantOwed)
			}
		})
	}
}

func TestDecodeBoat_Errors(t *testing.T) {
	testCases := []struct {
		name string
		line string
		want error
	}{
		{"empty line", "", ErrMalformedRecord},
		{"too few fields", "Frigate,40,slip,18", ErrMalformedRecord},
		{"too many fields", "Frigate,40,slip,18,500.00,extra", ErrMalformedRecord},
		{"empty name", ",40,slip,18,500.00", ErrMalformedRecord},
		{"empty location", "Frigate,40,land,,500.00", ErrMalformedRecord},
		{"non numeric length", "Frigate,forty,slip,18,500.00", ErrInvalidNumber},
		{"zero length", "Frigate,0,slip,18,500.00", ErrInvalidNumber},
		{"non numeric slip", "Frigate,40,slip,A,500.00", ErrInvalidNumber},
		{"non numeric storage", "Frigate,40,storage,x,500.00", ErrInvalidNumber},
		{"non numeric amount", "Frigate,40,slip,18,lots", ErrInvalidNumber},
		{"negative amount", "Frigate,40,slip,18,-1.00", ErrInvalidNumber},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeBoat(tc.line)
			if !errors.Is(err, tc.want) {
				t.Errorf("DecodeBoat(%q) error = %v, want %v", tc.line, err, tc.want)
			}
		})
	}
}

func TestDecodeBoatStrict(t *testing.T) {
	_, err := DecodeBoatStrict("Dinghy,8,shed,7,3.10")
	require.ErrorIs(t, err, ErrMalformedRecord)

	b, err := DecodeBoatStrict("Dinghy,8,storage,7,3.10")
	require.NoError(t, err)
	require.Equal(t, Storage{Number: 7}, b.Location)
}

func TestEncodeBoat(t *testing.T) {
	b := Boat{Name: "Frigate", Length: 40, Location: Slip{Number: 18}, Owed: M(1000)}
	require.Equal(t, "Frigate,40,slip,18,1000.00", EncodeBoat(b))

	b = Boat{Name: "Sea Sprite", Length: 22, Location: NewTrailer("LONGTAG99"), Owed: M(0.5)}
	require.Equal(t, "Sea Sprite,22,trailor,LONGTA,0.50", EncodeBoat(b))
}

func TestProperty_RecordRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		line := wellFormedRecord().Draw(rt, "record")
		b, err := DecodeBoat(line)
		require.NoError(rt, err)
		require.Equal(rt, line, EncodeBoat(b))
	})
}

func TestEncodeRegistry(t *testing.T) {
	input := `Zephyr,30,land,C,0.00

alpha,12,slip,4,10.50
Mid,25,trailor,TAG1,1.00
`
	lines, err := DecodeLines(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, lines, 4)

	r := NewRegistry(quietOptions())
	require.NoError(t, r.Load(lines))

	var buf bytes.Buffer
	require.NoError(t, EncodeRegistry(&buf, r))
	want := `alpha,12,slip,4,10.50
Mid,25,trailor,TAG1,1.00
Zephyr,30,land,C,0.00
`
	require.Equal(t, want, buf.String())
}

func TestDecodeLines(t *testing.T) {
	long := strings.Repeat("x", 200_000)
	input := "Frigate,40,slip,18,500.00\r\n\n" + long + ",10,slip,1,0.00\nlast"

	lines, err := DecodeLines(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []string{"Frigate,40,slip,18,500.00", "", long + ",10,slip,1,0.00", "last"}, lines)

	b, err := DecodeBoat(lines[2])
	require.NoError(t, err)
	require.Equal(t, long, b.Name)
}
