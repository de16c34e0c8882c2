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

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// I2C protocol opcodes, same framing convention as the serial driver: a
// register-style command byte followed by a fixed-length payload.
const (
	i2cRegUID          = 0x01
	i2cRegAuthenticate = 0x02
	i2cRegReadBlock    = 0x03
	i2cRegWriteBlock   = 0x04

	defaultI2CAddr uint16 = 0x24
)

// I2CDriver is a Driver backed by an I2C-connected reader, for PN532-class
// boards wired to the host's I2C bus instead of UART.
type I2CDriver struct {
	busName string
	addr    uint16
	bus     i2c.BusCloser
	dev     *i2c.Dev
}

// NewI2CDriver returns an I2CDriver for the named bus (empty string selects
// the host's default bus) at the given 7-bit address.
func NewI2CDriver(busName string, addr uint16) *I2CDriver {
	if addr == 0 {
		addr = defaultI2CAddr
	}
	return &I2CDriver{busName: busName, addr: addr}
}

func (d *I2CDriver) Connect(ctx context.Context) error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("nfc: init host drivers: %w", err)
	}
	bus, err := i2creg.Open(d.busName)
	if err != nil {
		return fmt.Errorf("nfc: open i2c bus %q: %w", d.busName, err)
	}
	d.bus = bus
	d.dev = &i2c.Dev{Addr: d.addr, Bus: bus}
	return nil
}

func (d *I2CDriver) Close() error {
	if d.bus == nil {
		return nil
	}
	return d.bus.Close()
}

func (d *I2CDriver) transact(reg byte, w []byte, replyLen int) ([]byte, error) {
	if d.dev == nil {
		return nil, ErrNoReader
	}
	req := append([]byte{reg}, w...)
	resp := make([]byte, 1+replyLen)
	if err := d.dev.Tx(req, resp); err != nil {
		return nil, fmt.Errorf("nfc: i2c transaction: %w", err)
	}
	if resp[0] != statusOK {
		return nil, ErrAuthFailed
	}
	return resp[1:], nil
}

func (d *I2CDriver) UID(ctx context.Context) ([4]byte, error) {
	resp, err := d.transact(i2cRegUID, nil, 4)
	if err != nil {
		return [4]byte{}, err
	}
	var uid [4]byte
	copy(uid[:], resp)
	return uid, nil
}

func (d *I2CDriver) Authenticate(ctx context.Context, sector int, keyType KeyType, key [6]byte) error {
	w := make([]byte, 0, 2+6)
	w = append(w, byte(sector), byte(keyType))
	w = append(w, key[:]...)
	_, err := d.transact(i2cRegAuthenticate, w, 0)
	return err
}

func (d *I2CDriver) ReadBlock(ctx context.Context, block int) ([16]byte, error) {
	resp, err := d.transact(i2cRegReadBlock, []byte{byte(block)}, 16)
	if err != nil {
		return [16]byte{}, err
	}
	var data [16]byte
	copy(data[:], resp)
	return data, nil
}

func (d *I2CDriver) WriteBlock(ctx context.Context, block int, data [16]byte) error {
	w := make([]byte, 0, 1+16)
	w = append(w, byte(block))
	w = append(w, data[:]...)
	_, err := d.transact(i2cRegWriteBlock, w, 0)
	return err
}
