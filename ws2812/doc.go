// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ws2812 drives a chain or matrix of WS2812 / WS2812b LEDs through a
// plain SPI port.
//
// The LEDs speak a one-wire protocol where every data bit is a high pulse of
// one of two widths. The SPI clock is chosen so that one SPI byte lasts one
// bit period: 0x7E sends a long pulse (1) and 0x70 sends a short pulse (0).
// Each LED therefore costs 24 SPI bytes per frame, green first, then red,
// then blue.
//
// Colors are kept with 5 bits per channel. On the way out each channel is
// mapped through a non-linear table to an 8-bit PWM duty cycle so that equal
// steps of the stored value look like equal steps of brightness.
//
// The whole frame must reach the chain without a gap longer than the reset
// threshold (about 50µs), otherwise the LEDs latch early and the remaining
// ones show garbage until the next frame. The transfer runs inside a
// CriticalSection for that reason.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/WS2812.pdf
package ws2812
