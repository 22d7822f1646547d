// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package tcp streams decoded endpoint audio to a TCP client, one client at
// a time. The stream starts with a 5-byte header (sample rate as
// little-endian uint32, then sample resolution in bits) followed by raw
// little-endian int16 PCM, written in batches to avoid small segments.
package tcp
