// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ledmatrix is a container for addressable LED drivers.
//
// ws2812 drives WS2812 strips and matrices over SPI; screen2d emulates a
// matrix at the console.
package ledmatrix
