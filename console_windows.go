//go:build windows

package termpaint

import (
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procSetConsoleTextAttribute     = kernel32.NewProc("SetConsoleTextAttribute")
	procFillConsoleOutputCharacterW = kernel32.NewProc("FillConsoleOutputCharacterW")
	procFillConsoleOutputAttribute  = kernel32.NewProc("FillConsoleOutputAttribute")
	procGetConsoleCursorInfo        = kernel32.NewProc("GetConsoleCursorInfo")
	procSetConsoleCursorInfo        = kernel32.NewProc("SetConsoleCursorInfo")
)

type consoleCursorInfo struct {
	size    uint32
	visible int32
}

type systemConsole struct {
	h windows.Handle
}

// SystemConsole returns the console attached to standard output
func SystemConsole() (ConsoleAPI, error) {
	h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return nil, initError("get stdout handle: %v", err)
	}
	if h == windows.InvalidHandle || h == 0 {
		return nil, initError("no stdout handle")
	}
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return nil, initError("stdout is not a console: %v", err)
	}
	return &systemConsole{h: h}, nil
}

// coordArg packs a COORD for by-value passing
func coordArg(c ConsoleCoord) uintptr {
	return uintptr(uint32(uint16(c.X)) | uint32(uint16(c.Y))<<16)
}

func (c *systemConsole) ScreenBufferInfo() (ScreenBufferInfo, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(c.h, &info); err != nil {
		return ScreenBufferInfo{}, err
	}
	return ScreenBufferInfo{
		Size:       ConsoleCoord{X: info.Size.X, Y: info.Size.Y},
		Cursor:     ConsoleCoord{X: info.CursorPosition.X, Y: info.CursorPosition.Y},
		Attributes: info.Attributes,
		Window: ConsoleRect{
			Left:   info.Window.Left,
			Top:    info.Window.Top,
			Right:  info.Window.Right,
			Bottom: info.Window.Bottom,
		},
	}, nil
}

func (c *systemConsole) SetCursorPosition(pos ConsoleCoord) error {
	return windows.SetConsoleCursorPosition(c.h, windows.Coord{X: pos.X, Y: pos.Y})
}

func (c *systemConsole) SetTextAttribute(attr uint16) error {
	r, _, err := procSetConsoleTextAttribute.Call(uintptr(c.h), uintptr(attr))
	if r == 0 {
		return err
	}
	return nil
}

func (c *systemConsole) FillCharacter(ch rune, n uint32, at ConsoleCoord) error {
	var written uint32
	r, _, err := procFillConsoleOutputCharacterW.Call(
		uintptr(c.h),
		uintptr(uint16(ch)),
		uintptr(n),
		coordArg(at),
		uintptr(unsafe.Pointer(&written)),
	)
	if r == 0 {
		return err
	}
	return nil
}

func (c *systemConsole) FillAttribute(attr uint16, n uint32, at ConsoleCoord) error {
	var written uint32
	r, _, err := procFillConsoleOutputAttribute.Call(
		uintptr(c.h),
		uintptr(attr),
		uintptr(n),
		coordArg(at),
		uintptr(unsafe.Pointer(&written)),
	)
	if r == 0 {
		return err
	}
	return nil
}

func (c *systemConsole) CursorInfo() (CursorInfo, error) {
	var info consoleCursorInfo
	r, _, err := procGetConsoleCursorInfo.Call(uintptr(c.h), uintptr(unsafe.Pointer(&info)))
	if r == 0 {
		return CursorInfo{}, err
	}
	return CursorInfo{Size: info.size, Visible: info.visible != 0}, nil
}

func (c *systemConsole) SetCursorInfo(info CursorInfo) error {
	ci := consoleCursorInfo{size: info.Size}
	if info.Visible {
		ci.visible = 1
	}
	if ci.size == 0 {
		// a zero size is rejected by the console
		ci.size = 25
	}
	r, _, err := procSetConsoleCursorInfo.Call(uintptr(c.h), uintptr(unsafe.Pointer(&ci)))
	if r == 0 {
		return err
	}
	return nil
}

func (c *systemConsole) WriteString(s string) error {
	if s == "" {
		return nil
	}
	buf := utf16.Encode([]rune(s))
	var written uint32
	return windows.WriteConsole(c.h, &buf[0], uint32(len(buf)), &written, nil)
}

// Close leaves the standard handle open; it belongs to the process
func (c *systemConsole) Close() error {
	return nil
}
