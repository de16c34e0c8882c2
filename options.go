// go-skyfigure
// Copyright (c) 2025 The go-skyfigure Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-skyfigure.
//
// go-skyfigure is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-skyfigure is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-skyfigure; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

package skyfigure

import "crypto/rand"

// newFigureConfig holds the options New accepts.
type newFigureConfig struct {
	uid [4]byte
}

// Option configures Figure construction.
type Option func(*newFigureConfig) error

// WithUID pins the figure's 4-byte UID instead of generating a random one.
func WithUID(uid [4]byte) Option {
	return func(c *newFigureConfig) error {
		c.uid = uid
		return nil
	}
}

func newFigureConfigFromOptions(opts []Option) (newFigureConfig, error) {
	var cfg newFigureConfig
	if _, err := rand.Read(cfg.uid[:]); err != nil {
		return cfg, err
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
