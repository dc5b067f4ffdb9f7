package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dborchard/orderedkv/pkg/cache/janitor"
	"github.com/dborchard/orderedkv/pkg/cache/ttlcache"
)

const (
	cacheCapacity = 1 << 16
	defaultTTL    = 180.0 // seconds
	sweepInterval = 30 * time.Second
	listenAddr    = ":3000"
)

func main() {
	instanceID := uuid.NewString()
	startedAt := time.Now()

	cache := ttlcache.New(cacheCapacity, defaultTTL, ttlcache.WithStats(100))
	j := janitor.New(cache, sweepInterval)
	j.Start()
	defer j.Stop()

	app := fiber.New(fiber.Config{AppName: "orderedkv-cache"})

	app.Post("/put/:key", func(c *fiber.Ctx) error {
		key, err := parseKey(c.Params("key"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		value, err := parseKey(string(c.Body()))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "body must be an int32 value")
		}
		ttl := defaultTTL
		if q := c.Query("ttl"); q != "" {
			ttl, err = strconv.ParseFloat(q, 64)
			if err != nil || ttl <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "ttl must be a positive number of seconds")
			}
		}
		j.Do(func(cc *ttlcache.Cache) { cc.PutWithTTL(key, value, ttl) })
		return c.SendStatus(fiber.StatusOK)
	})

	app.Get("/get/:key", func(c *fiber.Ctx) error {
		key, err := parseKey(c.Params("key"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		var (
			value int32
			ok    bool
		)
		j.Do(func(cc *ttlcache.Cache) { value, ok = cc.Get(key) })
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "key not found")
		}
		return c.SendString(strconv.FormatInt(int64(value), 10))
	})

	app.Get("/ttl/:key", func(c *fiber.Ctx) error {
		key, err := parseKey(c.Params("key"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		var (
			remaining float64
			ok        bool
		)
		j.Do(func(cc *ttlcache.Cache) { remaining, ok = cc.RemainingTTL(key) })
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "key not found")
		}
		return c.SendString(strconv.FormatFloat(remaining, 'f', 3, 64))
	})

	app.Post("/refresh/:key", func(c *fiber.Ctx) error {
		key, err := parseKey(c.Params("key"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		var ok bool
		j.Do(func(cc *ttlcache.Cache) { ok = cc.Refresh(key) })
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "key not found")
		}
		return c.SendStatus(fiber.StatusOK)
	})

	app.Delete("/delete/:key", func(c *fiber.Ctx) error {
		key, err := parseKey(c.Params("key"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		var ok bool
		j.Do(func(cc *ttlcache.Cache) { ok = cc.Delete(key) })
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "key not found")
		}
		return c.SendStatus(fiber.StatusOK)
	})

	app.Post("/cleanup", func(c *fiber.Ctx) error {
		var removed int
		j.Do(func(cc *ttlcache.Cache) { removed = cc.Cleanup() })
		return c.JSON(fiber.Map{"removed": removed})
	})

	app.Get("/stats", func(c *fiber.Ctx) error {
		var (
			size       int
			capacity   int
			avgCleanup time.Duration
		)
		j.Do(func(cc *ttlcache.Cache) {
			size = cc.Len()
			capacity = cc.Cap()
			avgCleanup = cc.AvgCleanupTime()
		})
		return c.JSON(fiber.Map{
			"instance_id":     instanceID,
			"uptime":          time.Since(startedAt).String(),
			"size":            size,
			"capacity":        capacity,
			"default_ttl_sec": defaultTTL,
			"sweeps":          j.Swept(),
			"avg_cleanup":     avgCleanup.String(),
		})
	})

	fmt.Println("Started server", instanceID, "on", listenAddr)
	if err := app.Listen(listenAddr); err != nil {
		panic(err)
	}
}

func parseKey(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("key %q is not an int32", s)
	}
	return int32(n), nil
}
