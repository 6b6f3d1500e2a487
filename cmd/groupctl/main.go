// Command groupctl manages post groups and the listing cache from the shell.
//
//	groupctl create -title Cats -slug cats -description "all about cats"
//	groupctl list
//	groupctl delete -slug cats
//	groupctl cache-clear
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	dbadapter "yatube/internal/adapters/database"
	redisadapter "yatube/internal/adapters/redis"
	"yatube/internal/config"
	groupapp "yatube/internal/core/group/service"
	cachePort "yatube/internal/ports/cache"

	"go.uber.org/zap"
)

const usageText = "usage: groupctl create|list|delete|cache-clear [-title T] [-slug S] [-description D]"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usageText)
		os.Exit(2)
	}
	cmd := os.Args[1]

	config.InitLogger()
	cfg := config.Init()

	var svc *groupapp.GroupService
	var cache cachePort.ListingCache
	if cmd == "cache-clear" {
		cache = redisadapter.NewListingCacheRedis(config.InitRedis(cfg), config.Logger)
	} else {
		db := config.InitDB(cfg)
		if err := dbadapter.Migrate(db); err != nil {
			config.Logger.Fatal("Error during migrations", zap.Error(err))
		}
		svc = groupapp.NewGroupService(dbadapter.NewGroupRepositoryDatabase(db), config.Logger)
	}

	if err := run(context.Background(), os.Stdout, svc, cache, cmd, os.Args[2:]); err != nil {
		config.Logger.Fatal("groupctl failed", zap.String("command", cmd), zap.Error(err))
	}
}

func run(ctx context.Context, out io.Writer, svc *groupapp.GroupService, cache cachePort.ListingCache, cmd string, args []string) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	title := fs.String("title", "", "group title")
	slug := fs.String("slug", "", "group slug")
	description := fs.String("description", "", "group description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch cmd {
	case "create":
		g, err := svc.CreateGroup(ctx, *title, *slug, *description)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "created %s (%s)\n", g.Slug, g.ID)
	case "list":
		groups, err := svc.ListGroups(ctx)
		if err != nil {
			return err
		}
		for _, g := range groups {
			fmt.Fprintf(out, "%s\t%s\n", g.Slug, g.Title)
		}
	case "delete":
		if err := svc.DeleteGroup(ctx, *slug); err != nil {
			return err
		}
		fmt.Fprintf(out, "deleted %s, its posts are kept without a group\n", *slug)
	case "cache-clear":
		if err := cache.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "listing cache cleared")
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usageText)
	}
	return nil
}
