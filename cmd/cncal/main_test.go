package main

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestRun(t *testing.T) {
	now := time.Date(2023, time.January, 21, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "today in Beijing",
			args: nil,
			want: []string{"2023-01-22 Sunday", "78-40-01-01", "癸卯年正月初一", "Guǐ-Mǎo", "Rabbit", "1st month, 1st day", "new moon at 04:"},
		},
		{
			name: "leap month",
			args: []string{"-t", "2023-03-22"},
			want: []string{"78-40-02L-01", "leap 2nd month", "2024-02-10"},
		},
		{
			name: "ascii",
			args: []string{"-t", "2023-01-22", "-ascii"},
			want: []string{"Gui-Mao", "Dahan"},
		},
		{
			name: "terms",
			args: []string{"-t", "2023-06-01", "-s", "terms"},
			want: []string{"Solar terms of 2023", "2023-01-05", "Qīngmíng", "2023-12-22"},
		},
		{
			name: "year before new year",
			args: []string{"-t", "2023-01-10", "-s", "year"},
			want: []string{"Rén-Yín", "year of the Tiger", "2022-02-01"},
		},
		{
			name: "year with leap month",
			args: []string{"-t", "2023-06-01", "-s", "year"},
			want: []string{"384 days from 2023-01-22", "leap month after the 2nd", "闰二月"},
		},
		{
			name: "moon",
			args: []string{"-t", "2023-06-01", "-s", "moon"},
			want: []string{"New and full moons of 2023", "2023-01-07", "Full Moon", "2023-08-31", "2023-12-13"},
		},
		{
			name: "solar",
			args: []string{"-t", "2023-06-01", "-s", "solar"},
			want: []string{"March Equinox", "2023-03-21", "December Solstice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if err := run(tt.args, &stdout, &stderr, now); err != nil {
				t.Fatalf("run(%v) error = %v (stderr %q)", tt.args, err, stderr.String())
			}
			out := stdout.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	now := time.Date(2023, time.January, 21, 20, 0, 0, 0, time.UTC)

	for _, args := range [][]string{
		{"-t", "yesterday"},
		{"-s", "almanac"},
		{"-t", "3500-01-01"},
	} {
		var stdout, stderr bytes.Buffer
		if err := run(args, &stdout, &stderr, now); err == nil {
			t.Errorf("run(%v) succeeded, want an error", args)
		}
	}
}
