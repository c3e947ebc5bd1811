package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix       = "user:%d"
	PostKeyPrefix       = "post:%d"
	ProfileKeyPrefix    = "profile:user:%d"
	ProfileHandlePrefix = "profile:handle:%s"
)

const (
	UserTTL    = 5 * time.Minute
	ProfileTTL = 10 * time.Minute
	PostTTL    = 30 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func ProfileKey(userID uint) string {
	return fmt.Sprintf(ProfileKeyPrefix, userID)
}

func ProfileHandleKey(handle string) string {
	return fmt.Sprintf(ProfileHandlePrefix, handle)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidateProfile(ctx context.Context, userID uint, handle string) {
	Invalidate(ctx, ProfileKey(userID))
	if handle != "" {
		Invalidate(ctx, ProfileHandleKey(handle))
	}
}
