// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import "github.com/ajroetker/go-simdsort/hwy"

type config struct {
	descending bool
	hasNaN     bool
	tag        hwy.Tag
}

// Option configures a single sort, select or partial sort call.
type Option func(*config)

// Descending orders from the largest to the smallest element.
func Descending() Option {
	return func(c *config) {
		c.descending = true
	}
}

// HasNaN tells the call that float data may contain NaNs. They are moved to
// the end of an ascending result and to the start of a descending one.
//
// Without it the NaN scan is skipped and data holding NaNs is left in an
// unspecified order.
func HasNaN() Option {
	return WithNaN(true)
}

// WithNaN sets the NaN hint explicitly.
func WithNaN(hasNaN bool) Option {
	return func(c *config) {
		c.hasNaN = hasNaN
	}
}

// WithTag sizes the registers after tag instead of the detected target.
// Results do not depend on the tag.
func WithTag(tag hwy.Tag) Option {
	return func(c *config) {
		if tag != nil {
			c.tag = tag
		}
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{tag: hwy.ScalableTag{}}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
