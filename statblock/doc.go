// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package statblock lexes the indented "new entry / type / using / data"
// stat-block text format into raw record trees. It performs no
// inheritance resolution or type coercion — see package definitions for
// that — it only recovers the record structure, tolerating malformed
// input by warning and skipping rather than failing the whole file.
package statblock
