package utils

import (
	"reflect"
	"testing"
)

func TestParseRanges(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want RangeList
	}{
		{
			name: "empty",
			spec: "",
			want: nil,
		},
		{
			name: "single",
			spec: "1-100",
			want: RangeList{{Min: 1, Max: 100}},
		},
		{
			name: "multi",
			spec: "10-20;15-25",
			want: RangeList{{Min: 10, Max: 20}, {Min: 15, Max: 25}},
		},
		{
			name: "reversed endpoints swap",
			spec: "20-10",
			want: RangeList{{Min: 10, Max: 20}},
		},
		{
			name: "whitespace tolerated",
			spec: " 5 - 9 ; 12-12 ",
			want: RangeList{{Min: 5, Max: 9}, {Min: 12, Max: 12}},
		},
		{
			name: "malformed segments skipped",
			spec: "abc;5;-7;3-;1-4",
			want: RangeList{{Min: 1, Max: 4}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseRanges(tt.spec); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRanges(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestRangeListContains(t *testing.T) {
	rl := ParseRanges("10-20;15-25")
	tests := []struct {
		id   uint32
		want bool
	}{
		{9, false},
		{10, true},
		{18, true},
		{25, true},
		{26, false},
		{30, false},
	}
	for _, tt := range tests {
		if got := rl.Contains(tt.id); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestCachedRanges(t *testing.T) {
	spec := "100-200;300-300"
	want := ParseRanges(spec)
	for i := 0; i < 3; i++ {
		if got := CachedRanges(spec); !reflect.DeepEqual(got, want) {
			t.Fatalf("CachedRanges(%q) = %v, want %v", spec, got, want)
		}
	}
}
