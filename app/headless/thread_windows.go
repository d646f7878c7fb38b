// SPDX-License-Identifier: Unlicense OR MIT

package headless

import "golang.org/x/sys/windows"

func threadID() int64 {
	return int64(windows.GetCurrentThreadId())
}
