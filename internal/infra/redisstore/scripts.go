package redisstore

import "github.com/redis/go-redis/v9"

// KEYS[1] remaining counter, KEYS[2] per-user marker, ARGV[1] marker TTL in milliseconds.
// Returns {code, remaining}: 1 success, 2 duplicated, 0 sold out.
// The marker is written before the decrement so a rejected SET leaves the counter untouched.
const allocateLua = `
if redis.call('EXISTS', KEYS[2]) == 1 then
  return {2, -1}
end
local remaining = tonumber(redis.call('GET', KEYS[1]))
if remaining == nil or remaining <= 0 then
  return {0, 0}
end
redis.call('SET', KEYS[2], '1', 'PX', ARGV[1])
local left = redis.call('DECR', KEYS[1])
return {1, left}
`

const (
	codeSoldOut    int64 = 0
	codeSuccess    int64 = 1
	codeDuplicated int64 = 2
)

var allocateScript = redis.NewScript(allocateLua)
