// Package main is a small admin tool for fitstats bearer sessions.
// Users are authenticated upstream, so dev and ops issue tokens with it:
//
//	session_tool issue -user <id>
//	session_tool revoke -token <token>
//	session_tool hash -password <pass>
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/2beens/fitstats/internal/auth"
	"github.com/2beens/fitstats/internal/config"
	"github.com/2beens/fitstats/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const usage = "usage: session_tool [issue | revoke | hash] [flags]"

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}

	subcommand, args := os.Args[1], os.Args[2:]
	switch subcommand {
	case "hash":
		hashCmd(args)
	case "issue":
		issueCmd(args)
	case "revoke":
		revokeCmd(args)
	default:
		fmt.Println(usage)
		os.Exit(2)
	}
}

func hashCmd(args []string) {
	fs := flag.NewFlagSet("hash", flag.ExitOnError)
	password := fs.String("password", "", "admin password to hash")
	_ = fs.Parse(args)

	if *password == "" {
		log.Fatalln("password not specified")
	}

	hash, err := pkg.HashPassword(*password)
	if err != nil {
		log.Fatalf("hash password: %s", err)
	}
	fmt.Println(hash)
}

func issueCmd(args []string) {
	fs := flag.NewFlagSet("issue", flag.ExitOnError)
	env := fs.String("env", "development", "environment [prod | production | dev | development]")
	configPath := fs.String("config", "./config.toml", "path for the TOML config file")
	userID := fs.String("user", "", "id of the user the session is issued for")
	_ = fs.Parse(args)

	if *userID == "" {
		log.Fatalln("user id not specified")
	}
	checkAdminPassword()

	rdb := redisClient(*env, *configPath)
	defer rdb.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	authService := auth.NewAuthService(auth.DefaultTTL, rdb)
	token, err := authService.Login(ctx, *userID, time.Now())
	if err != nil {
		log.Fatalf("issue session: %s", err)
	}

	log.Debugf("session for user [%s] valid for %s", *userID, auth.DefaultTTL)
	fmt.Println(token)
}

func revokeCmd(args []string) {
	fs := flag.NewFlagSet("revoke", flag.ExitOnError)
	env := fs.String("env", "development", "environment [prod | production | dev | development]")
	configPath := fs.String("config", "./config.toml", "path for the TOML config file")
	token := fs.String("token", "", "session token to revoke")
	_ = fs.Parse(args)

	if *token == "" {
		log.Fatalln("token not specified")
	}
	checkAdminPassword()

	rdb := redisClient(*env, *configPath)
	defer rdb.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	authService := auth.NewAuthService(auth.DefaultTTL, rdb)
	revoked, err := authService.Logout(ctx, *token)
	if err != nil {
		log.Fatalf("revoke session: %s", err)
	}
	if !revoked {
		log.Warnln("session not found")
		return
	}
	fmt.Println("revoked")
}

func checkAdminPassword() {
	adminPasswordHash := os.Getenv("FITSTATS_ADMIN_PASSWORD_HASH")
	if adminPasswordHash == "" {
		log.Fatalln("admin password hash not set. use FITSTATS_ADMIN_PASSWORD_HASH")
	}
	if !pkg.CheckPasswordHash(os.Getenv("FITSTATS_ADMIN_PASSWORD"), adminPasswordHash) {
		log.Fatalln("wrong admin password. use FITSTATS_ADMIN_PASSWORD")
	}
}

func redisClient(env, configPath string) *redis.Client {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	return redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: os.Getenv("FITSTATS_REDIS_PASS"),
		DB:       0,
	})
}
