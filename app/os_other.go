// SPDX-License-Identifier: Unlicense OR MIT

//go:build !darwin || ios

package app

import "github.com/evloop/evloop/app/native"

func newNativeQueue() (native.Queue, error) {
	return nil, ErrNoNativeQueue
}
