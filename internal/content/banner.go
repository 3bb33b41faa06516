// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package content

// DefaultBanner is the block-letter name shown above the terminal log.
const DefaultBanner = ` █████╗ ██╗  ██╗ █████╗ ███████╗██╗  ██╗    ███╗   ██╗ █████╗ ███╗   ██╗ █████╗ ██╗   ██╗ █████╗ ████████╗██╗
██╔══██╗██║ ██╔╝██╔══██╗██╔════╝██║  ██║    ████╗  ██║██╔══██╗████╗  ██║██╔══██╗██║   ██║██╔══██╗╚══██╔══╝██║
███████║█████╔╝ ███████║███████╗███████║    ██╔██╗ ██║███████║██╔██╗ ██║███████║██║   ██║███████║   ██║   ██║
██╔══██║██╔═██╗ ██╔══██║╚════██║██╔══██║    ██║╚██╗██║██╔══██║██║╚██╗██║██╔══██║╚██╗ ██╔╝██╔══██║   ██║   ██║
██║  ██║██║  ██╗██║  ██║███████║██║  ██║    ██║ ╚████║██║  ██║██║ ╚████║██║  ██║ ╚████╔╝ ██║  ██║   ██║   ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝    ╚═╝  ╚═══╝╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝  ╚═══╝  ╚═╝  ╚═╝   ╚═╝   ╚═╝`
