package menu

// 该文件实现渲染结果缓存：键为页面的完整输入描述，值为编码后的图片字节。

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL 为缓存条目的默认存活时间。
const DefaultCacheTTL = 30 * time.Minute

// CacheKey 描述一次渲染的全部输入。字段相同的两次请求必须产生相同的
// 图片，因此指纹相同即可复用缓存。管理员身份只通过 ShowHidden 与
// 可见命令集影响画面，不单独参与指纹。
type CacheKey struct {
	Kind       string   // 页面种类
	Names      []string // 参与渲染的名称，按展示顺序排列
	ShowHidden bool
	Theme      string
	Page       int // 主页面的分页页码，0 表示完整列表
}

// Fingerprint 返回键的 SHA-256 摘要（十六进制）。字段间以 0x1e 分隔、
// 名称间以 0x1f 分隔，避免拼接歧义。
func (k CacheKey) Fingerprint() string {
	h := sha256.New()
	h.Write([]byte(k.Kind))
	h.Write([]byte{0x1e})
	h.Write([]byte(strings.Join(k.Names, "\x1f")))
	h.Write([]byte{0x1e})
	h.Write([]byte(strconv.FormatBool(k.ShowHidden)))
	h.Write([]byte{0x1e})
	h.Write([]byte(k.Theme))
	h.Write([]byte{0x1e})
	h.Write([]byte(strconv.Itoa(k.Page)))
	return hex.EncodeToString(h.Sum(nil))
}

// ImageCache 是带 TTL 的渲染结果缓存。过期检查在读取时惰性进行，
// 相同指纹的并发填充只执行一次。
type ImageCache struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewImageCache 创建缓存，ttl 非正时使用 DefaultCacheTTL。
func NewImageCache(ttl time.Duration) *ImageCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ImageCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Get 返回未过期的缓存内容。过期条目被即时移除并视为未命中。
func (c *ImageCache) Get(key CacheKey) ([]byte, bool) {
	fp := key.Fingerprint()
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[fp]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, fp)
		return nil, false
	}
	return e.data, true
}

// Put 写入渲染结果，条目自写入时刻起存活 TTL 时长。
func (c *ImageCache) Put(key CacheKey, data []byte) {
	fp := key.Fingerprint()
	c.mu.Lock()
	c.entries[fp] = cacheEntry{data: data, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// GetOrFill 先查缓存，未命中时调用 fill 生成并写入。
// 相同指纹的并发请求只触发一次 fill，其余请求等待并共享结果。
func (c *ImageCache) GetOrFill(key CacheKey, fill func() ([]byte, error)) ([]byte, error) {
	if data, ok := c.Get(key); ok {
		return data, nil
	}
	fp := key.Fingerprint()
	v, err, _ := c.group.Do(fp, func() (any, error) {
		if data, ok := c.Get(key); ok {
			return data, nil
		}
		data, err := fill()
		if err != nil {
			return nil, err
		}
		c.Put(key, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Len 返回当前条目数，含尚未被惰性清理的过期条目。
func (c *ImageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear 清空缓存并返回清除的条目数。
func (c *ImageCache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = make(map[string]cacheEntry)
	return n
}

// Prune 移除所有已过期的条目并返回移除数量。
func (c *ImageCache) Prune() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	n := 0
	for fp, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, fp)
			n++
		}
	}
	return n
}

// TTL 返回缓存条目的存活时间。
func (c *ImageCache) TTL() time.Duration { return c.ttl }
