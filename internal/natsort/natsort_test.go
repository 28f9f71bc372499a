package natsort

import (
	"reflect"
	"testing"
)

func TestKeyOf(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Key
	}{
		{"no digits", "frame", Key{{Text: "frame"}}},
		{"empty", "", Key{{Text: ""}}},
		{"trailing number", "a2", Key{{Text: "a"}, {Text: "2", IsNum: true}, {Text: ""}}},
		{"leading number", "12b", Key{{Text: ""}, {Text: "12", IsNum: true}, {Text: "b"}}},
		{"two runs", "f1_v03.png", Key{
			{Text: "f"}, {Text: "1", IsNum: true},
			{Text: "_v"}, {Text: "03", IsNum: true},
			{Text: ".png"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeyOf(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("KeyOf(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"numeric suffix", []string{"a2", "a10", "a1"}, []string{"a1", "a2", "a10"}},
		{"frames", []string{"f10.png", "f1.png", "f2.png"}, []string{"f1.png", "f2.png", "f10.png"}},
		{"no digit name mixed", []string{"frame10", "frame", "frame2"}, []string{"frame", "frame2", "frame10"}},
		{"plain text", []string{"b.gif", "a.gif"}, []string{"a.gif", "b.gif"}},
		{"digits before text", []string{"x", "10", "9"}, []string{"9", "10", "x"}},
		{"huge numbers", []string{"f100000000000000000000", "f99999999999999999999"}, []string{"f99999999999999999999", "f100000000000000000000"}},
		{"leading zeros are stable", []string{"7", "007", "06"}, []string{"06", "7", "007"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := append([]string(nil), tt.in...)
			Sort(got)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sort(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"frame", "frame1", -1},
		{"frame1", "frame", 1},
		{"frame", "frame", 0},
		{"a01", "a1", 0},
		{"a2", "a10", -1},
		{"a10b", "a10a", 1},
	}

	for _, tt := range tests {
		if got := Compare(KeyOf(tt.a), KeyOf(tt.b)); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := Less(tt.a, tt.b); got != (tt.want < 0) {
			t.Errorf("Less(%q, %q) = %v", tt.a, tt.b, got)
		}
	}
}
