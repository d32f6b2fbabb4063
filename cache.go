// Copyright 2025 Naren Yellavula
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

package main

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// Clean up expired renderings every 5 minutes
const renderCacheCleanup = 5 * time.Minute

// NewRenderCache creates a cache of tree drawings keyed by tree version.
func NewRenderCache(expiration time.Duration) *cache.Cache {
	return cache.New(expiration, renderCacheCleanup)
}

func renderCacheKey(version uint64) string {
	return strconv.FormatUint(version, 10)
}

func CacheRendering(c *cache.Cache, version uint64, drawing string) {
	c.SetDefault(renderCacheKey(version), drawing)
}

func GetRendering(c *cache.Cache, version uint64) (string, bool) {
	val, ok := c.Get(renderCacheKey(version))
	if !ok {
		return "", false
	}
	return val.(string), true
}
