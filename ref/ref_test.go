package ref

import "testing"

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		in      string
		want    Coordinate
		wantErr bool
	}{
		{"A1", Coordinate{Column: 1, Row: 1}, false},
		{"B3", Coordinate{Column: 2, Row: 3}, false},
		{"Z26", Coordinate{Column: 26, Row: 26}, false},
		{"AA1", Coordinate{Column: 27, Row: 1}, false},
		{"XFD1048576", Coordinate{Column: 16384, Row: 1048576}, false},
		{"$B$3", Coordinate{Column: 2, Row: 3, ColumnLocked: true, RowLocked: true}, false},
		{"$B3", Coordinate{Column: 2, Row: 3, ColumnLocked: true}, false},
		{"B$3", Coordinate{Column: 2, Row: 3, RowLocked: true}, false},
		{"R3C2", Coordinate{Column: 2, Row: 3}, false},
		{"r10c5", Coordinate{Column: 5, Row: 10}, false},
		{"", Coordinate{}, true},
		{"123", Coordinate{}, true},
		{"ABC", Coordinate{}, true},
		{"A0", Coordinate{}, true},
		{"1A", Coordinate{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCoordinate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCoordinate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseCoordinate(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCoordinateString(t *testing.T) {
	tests := []struct {
		c    Coordinate
		want string
	}{
		{Coordinate{Column: 1, Row: 1}, "A1"},
		{Coordinate{Column: 27, Row: 100}, "AA100"},
		{Coordinate{Column: 2, Row: 3, ColumnLocked: true, RowLocked: true}, "$B$3"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.c, got, tt.want)
		}
	}

	if got := (Coordinate{Column: 2, Row: 3}).R1C1(); got != "R3C2" {
		t.Errorf("R1C1() = %q, want R3C2", got)
	}
}

func TestColumnNameRoundTrip(t *testing.T) {
	tests := []struct {
		n    uint32
		name string
	}{
		{1, "A"},
		{26, "Z"},
		{27, "AA"},
		{52, "AZ"},
		{702, "ZZ"},
		{703, "AAA"},
		{16384, "XFD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColumnName(tt.n); got != tt.name {
				t.Errorf("ColumnName(%d) = %q, want %q", tt.n, got, tt.name)
			}
			got, ok := ColumnNumber(tt.name)
			if !ok || got != tt.n {
				t.Errorf("ColumnNumber(%q) = %d, %v; want %d", tt.name, got, ok, tt.n)
			}
		})
	}

	if _, ok := ColumnNumber("A1"); ok {
		t.Error("ColumnNumber should reject digits")
	}
	if got := ColumnName(0); got != "" {
		t.Errorf("ColumnName(0) = %q, want empty", got)
	}
}

func TestParseDimension(t *testing.T) {
	d, err := ParseDimension("A1:D10")
	if err != nil {
		t.Fatal(err)
	}
	if d.Start != (Coordinate{Column: 1, Row: 1}) || d.End != (Coordinate{Column: 4, Row: 10}) {
		t.Errorf("ParseDimension(A1:D10) = %+v", d)
	}
	if d.Columns() != 4 || d.Rows() != 10 {
		t.Errorf("span = %dx%d, want 4x10", d.Columns(), d.Rows())
	}
	if d.String() != "A1:D10" {
		t.Errorf("String() = %q", d.String())
	}

	single, err := ParseDimension("C5")
	if err != nil {
		t.Fatal(err)
	}
	if single.Start != single.End {
		t.Errorf("single-cell range: %+v", single)
	}
	if single.String() != "C5" {
		t.Errorf("single-cell String() = %q", single.String())
	}

	if _, err := ParseDimension("A1:"); err == nil {
		t.Error("expected error for dangling colon")
	}
	if _, err := ParseDimension(""); err == nil {
		t.Error("expected error for empty range")
	}
}

func TestDimensionContains(t *testing.T) {
	d := Dimension{
		Start: Coordinate{Column: 2, Row: 2},
		End:   Coordinate{Column: 4, Row: 5},
	}

	if !d.Contains(Coordinate{Column: 3, Row: 3}) {
		t.Error("interior cell should be contained")
	}
	if !d.Contains(d.Start) || !d.Contains(d.End) {
		t.Error("range bounds are inclusive")
	}
	if d.Contains(Coordinate{Column: 1, Row: 3}) {
		t.Error("cell left of range should not be contained")
	}
	if d.Contains(Coordinate{Column: 3, Row: 6}) {
		t.Error("cell below range should not be contained")
	}
}
