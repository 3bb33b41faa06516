// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package terminal is the Bubble Tea model behind the interactive portfolio
terminal.

One Model owns every piece of UI state: the output log, the prompt, input
history, the background rain and the open modal. All timer-driven effects
arrive as messages on the update loop:

  - typewriterTickMsg reveals one more character of an animated log entry.
    Ticks for entries removed by clear are dropped.
  - deferredMsg appends output scheduled by a command (ping replies).
  - anim.FrameMsg advances the background rain or the modal rain. Frames
    from a stopped animation are ignored, which ends its tick chain.
  - ConfigReloadedMsg applies a configuration change from the file watcher.

# Layout

	+------------------------------------+
	| banner                             |
	|                                    |
	| output log (viewport)              |
	| user@akash:~$ _                    |
	| hint / completions                 |
	| F1 help  F2 about ...              |
	+------------------------------------+

The panel is centred on the screen and the margins are filled with rain.
While a modal is open it replaces the panel.
*/
package terminal
