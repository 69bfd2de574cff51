package kbdctl

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Quitter is told when the user asks to leave.
type Quitter interface {
	RequestQuit(reason string)
}

func SetupShortcutKeys(w *glfw.Window, q Quitter) {
	w.SetKeyCallback(keyCallback(q))
}

func keyCallback(q Quitter) glfw.KeyCallback {
	return func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Release {
			return
		}
		if isQuitKey(key, mods) {
			slog.Info("told to quit, exiting", slog.String("module", "kbdctl"))
			q.RequestQuit("keyboard")
		}
	}
}

func isQuitKey(key glfw.Key, mods glfw.ModifierKey) bool {
	if key == glfw.KeyEscape {
		return true
	}
	return key == glfw.KeyQ &&
		mods&glfw.ModControl != 0 &&
		mods&glfw.ModShift != 0
}
