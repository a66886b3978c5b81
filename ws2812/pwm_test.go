// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ws2812

import "testing"

func TestBrightnessToPWM(t *testing.T) {
	for _, tc := range []struct {
		in, want byte
	}{
		{0, 0},
		{15, 0},
		{16, 1},
		{100, 8},
		{120, 12},
		{128, 23},
		{200, 95},
		{240, 255},
		{255, 255},
	} {
		if got := BrightnessToPWM(tc.in); got != tc.want {
			t.Errorf("BrightnessToPWM(%d) = %d; want %d", tc.in, got, tc.want)
		}
	}
}

func TestPWMTablesMonotonic(t *testing.T) {
	for i := 1; i < len(pwmLevels); i++ {
		if pwmLevels[i] <= pwmLevels[i-1] {
			t.Errorf("pwmLevels[%d] = %d <= %d", i, pwmLevels[i], pwmLevels[i-1])
		}
	}
	for i := 1; i < len(pwmTable); i++ {
		if pwmTable[i] <= pwmTable[i-1] {
			t.Errorf("pwmTable[%d] = %d <= %d", i, pwmTable[i], pwmTable[i-1])
		}
	}
	if pwmTable[0] != 0 || pwmTable[31] != 255 {
		t.Errorf("pwmTable ends = %d, %d", pwmTable[0], pwmTable[31])
	}
}

func TestChannelToPWM(t *testing.T) {
	if got := ChannelToPWM(31); got != 255 {
		t.Errorf("ChannelToPWM(31) = %d", got)
	}
	if got := ChannelToPWM(16); got != 27 {
		t.Errorf("ChannelToPWM(16) = %d", got)
	}
	// Only the low 5 bits count.
	if got := ChannelToPWM(32 + 1); got != 1 {
		t.Errorf("ChannelToPWM(33) = %d", got)
	}
}
