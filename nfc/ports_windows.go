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

//go:build windows

package nfc

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// listPortsWindows enumerates COM ports directly from the registry's
// SERIALCOMM map, which go.bug.st/serial's GetPortsList also reads on
// Windows but which is useful to query standalone for reader auto-detection
// UI (listing friendly names before a port is opened).
func listPortsWindows() ([]string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, `HARDWARE\DEVICEMAP\SERIALCOMM`, registry.QUERY_VALUE)
	if err != nil {
		if err == registry.ErrNotExist {
			return nil, ErrNoReader
		}
		return nil, fmt.Errorf("nfc: open SERIALCOMM registry key: %w", err)
	}
	defer key.Close()

	names, err := key.ReadValueNames(0)
	if err != nil {
		return nil, fmt.Errorf("nfc: read SERIALCOMM values: %w", err)
	}

	ports := make([]string, 0, len(names))
	for _, name := range names {
		port, _, err := key.GetStringValue(name)
		if err != nil {
			continue
		}
		ports = append(ports, port)
	}
	if len(ports) == 0 {
		return nil, ErrNoReader
	}
	return ports, nil
}
