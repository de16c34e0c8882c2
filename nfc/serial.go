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

package nfc

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
)

// Serial protocol opcodes. Every request is opcode + payload; every
// response is a one-byte status (0 = ok) followed by the opcode's reply
// payload.
const (
	opUID          byte = 0x01
	opAuthenticate byte = 0x02
	opReadBlock    byte = 0x03
	opWriteBlock   byte = 0x04

	statusOK byte = 0x00
)

// SerialDriver is a Driver backed by a UART-connected reader, such as a
// PN532 breakout board wired over USB-serial.
type SerialDriver struct {
	portName string
	mode     *serial.Mode
	port     serial.Port
}

// NewSerialDriver returns a SerialDriver for the named port (e.g.
// "/dev/ttyUSB0", "COM3") at the given baud rate.
func NewSerialDriver(portName string, baudRate int) *SerialDriver {
	return &SerialDriver{
		portName: portName,
		mode:     &serial.Mode{BaudRate: baudRate},
	}
}

// ListPorts enumerates serial ports that might host a reader.
func ListPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("nfc: list serial ports: %w", err)
	}
	if len(ports) == 0 {
		return nil, ErrNoReader
	}
	return ports, nil
}

func (d *SerialDriver) Connect(ctx context.Context) error {
	port, err := serial.Open(d.portName, d.mode)
	if err != nil {
		return fmt.Errorf("nfc: open %s: %w", d.portName, err)
	}
	if err := port.SetReadTimeout(2 * time.Second); err != nil {
		port.Close()
		return fmt.Errorf("nfc: set read timeout: %w", err)
	}
	d.port = port
	return nil
}

func (d *SerialDriver) Close() error {
	if d.port == nil {
		return nil
	}
	return d.port.Close()
}

func (d *SerialDriver) transact(req []byte, replyLen int) ([]byte, error) {
	if d.port == nil {
		return nil, ErrNoReader
	}
	if _, err := d.port.Write(req); err != nil {
		return nil, fmt.Errorf("nfc: write request: %w", err)
	}

	resp := make([]byte, 1+replyLen)
	if _, err := io.ReadFull(d.port, resp); err != nil {
		return nil, fmt.Errorf("nfc: read response: %w", err)
	}
	if resp[0] != statusOK {
		return nil, ErrAuthFailed
	}
	return resp[1:], nil
}

func (d *SerialDriver) UID(ctx context.Context) ([4]byte, error) {
	resp, err := d.transact([]byte{opUID}, 4)
	if err != nil {
		return [4]byte{}, err
	}
	var uid [4]byte
	copy(uid[:], resp)
	return uid, nil
}

func (d *SerialDriver) Authenticate(ctx context.Context, sector int, keyType KeyType, key [6]byte) error {
	req := make([]byte, 0, 1+1+1+6)
	req = append(req, opAuthenticate, byte(sector), byte(keyType))
	req = append(req, key[:]...)
	_, err := d.transact(req, 0)
	return err
}

func (d *SerialDriver) ReadBlock(ctx context.Context, block int) ([16]byte, error) {
	resp, err := d.transact([]byte{opReadBlock, byte(block)}, 16)
	if err != nil {
		return [16]byte{}, err
	}
	var data [16]byte
	copy(data[:], resp)
	return data, nil
}

func (d *SerialDriver) WriteBlock(ctx context.Context, block int, data [16]byte) error {
	req := make([]byte, 0, 2+16)
	req = append(req, opWriteBlock, byte(block))
	req = append(req, data[:]...)
	_, err := d.transact(req, 0)
	return err
}
