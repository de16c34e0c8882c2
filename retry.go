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

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"
)

// RetryPolicy configures Retry's exponential backoff. Zero value is not
// usable directly; use DefaultRetryPolicy.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryPolicy is tuned for transient RF noise against a physical NFC
// reader: a handful of quick retries, never more than a second apart.
var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts: 4,
	BaseDelay:   25 * time.Millisecond,
	MaxDelay:    1 * time.Second,
}

// Retry calls fn up to policy.MaxAttempts times, stopping at the first
// success or the first error for which shouldRetry(err) is false. Between
// attempts it sleeps an exponentially increasing, jittered delay, honoring
// ctx cancellation while sleeping.
//
// This exists for the nfc package's reader operations (authenticate,
// read-block, write-block against physical hardware); codec logic is
// pure and never retried.
func Retry(ctx context.Context, policy RetryPolicy, shouldRetry func(error) bool, fn func() error) error {
	var err error
	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay, jitterErr := backoffDelay(policy, attempt)
			if jitterErr != nil {
				return jitterErr
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err = fn()
		if err == nil {
			return nil
		}
		if shouldRetry != nil && !shouldRetry(err) {
			return err
		}
	}
	return err
}

// backoffDelay computes policy.BaseDelay * 2^(attempt-1), capped at
// policy.MaxDelay, plus up to 20% jitter drawn from crypto/rand.
func backoffDelay(policy RetryPolicy, attempt int) (time.Duration, error) {
	delay := policy.BaseDelay << uint(attempt-1)
	if delay > policy.MaxDelay || delay <= 0 {
		delay = policy.MaxDelay
	}

	jitterRange := int64(delay) / 5
	if jitterRange <= 0 {
		return delay, nil
	}
	n, err := rand.Int(rand.Reader, big.NewInt(jitterRange))
	if err != nil {
		return 0, err
	}
	return delay + time.Duration(n.Int64()), nil
}
