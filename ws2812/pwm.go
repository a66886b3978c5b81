// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ws2812

// pwmLevels maps the high nibble of a visible brightness to a linear scaling
// factor.
var pwmLevels = [16]byte{0, 1, 2, 3, 4, 6, 8, 12, 23, 36, 48, 70, 95, 135, 190, 255}

// pwmTable maps a stored 5-bit channel to the 8-bit duty cycle sent to the
// LED. Entries above 8 grow by a constant ratio of about 1.16.
var pwmTable = [32]byte{
	0, 1, 2, 3, 4, 5, 6, 7,
	8, 9, 11, 13, 15, 17, 20, 23,
	27, 31, 36, 42, 49, 57, 66, 77,
	89, 103, 120, 140, 162, 189, 219, 255,
}

// BrightnessToPWM converts a visible brightness, 0..255, to a PWM scaling
// factor, 0..255, suitable for SetColorScaled.
//
// Only the 4 most significant bits of the brightness are used.
func BrightnessToPWM(brightness byte) byte {
	return pwmLevels[brightness>>4]
}

// ChannelToPWM returns the duty cycle sent on the wire for a stored 5-bit
// channel value. Bits above the 5th are ignored.
func ChannelToPWM(v uint8) byte {
	return pwmTable[v&mask5]
}
