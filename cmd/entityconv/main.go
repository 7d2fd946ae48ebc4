/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/suparena/entityconv"
	"github.com/suparena/entityconv/config"
	"github.com/suparena/entityconv/datastore"
	"github.com/suparena/entityconv/datastore/ddb"
	"github.com/suparena/entityconv/internal/cli"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	log, err := cfg.NewLogger()
	if err != nil {
		logrus.Fatal(err)
	}

	opts, err := cli.ParseArgs(os.Args[1:], cfg.TypeDefsPath)
	if err != nil {
		log.Fatal(err)
	}
	if opts.ShowVersion {
		info := entityconv.GetVersionInfo()
		fmt.Printf("entityconv version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		return
	}

	ctx := context.Background()
	var store datastore.StructStore
	if opts.StoreKey != "" && cfg.HasStore() {
		store, err = ddb.NewDynamodbStructStore(ctx, cfg.AWS.AccessKey, cfg.AWS.SecretKey, cfg.AWS.Region, cfg.AWS.TableName)
		if err != nil {
			log.Fatal(err)
		}
	}

	if err := cli.NewRunner(log, store, os.Stdout).Run(ctx, opts, os.Stdin); err != nil {
		log.WithError(err).Fatal("conversion failed")
	}
}
