// Copyright (c) 2025 Quillhub
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/quillhub/blog-api/blog"
	blogHandlers "github.com/quillhub/blog-api/blog/handlers"
	blogRepository "github.com/quillhub/blog-api/blog/repository"
	blogServices "github.com/quillhub/blog-api/blog/services"
	"github.com/quillhub/blog-api/comments"
	commentHandlers "github.com/quillhub/blog-api/comments/handlers"
	commentRepository "github.com/quillhub/blog-api/comments/repository"
	commentServices "github.com/quillhub/blog-api/comments/services"
	"github.com/quillhub/blog-api/internal/database/postgres"
	"github.com/quillhub/blog-api/internal/pkg/log"
	platformconfig "github.com/quillhub/blog-api/internal/platform/config"
	mediaProvider "github.com/quillhub/blog-api/media/provider"
	mediaServices "github.com/quillhub/blog-api/media/services"
	"github.com/quillhub/blog-api/submissions"
	submissionHandlers "github.com/quillhub/blog-api/submissions/handlers"
	submissionRepository "github.com/quillhub/blog-api/submissions/repository"
	submissionServices "github.com/quillhub/blog-api/submissions/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load config: %v", err)
		os.Exit(1)
	}
	if cfg.Server.Debug {
		log.Info("Loaded configuration:\n%s", log.Dump(cfg))
	}

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: cfg.Server.BodyLimitMB * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			// If a handler already wrote a response, don't override it.
			if len(c.Response().Body()) > 0 {
				return nil
			}

			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.WebDomain,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, PATCH, OPTIONS",
	}))

	ctx := context.Background()
	pgClient, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		log.Error("Failed to connect to postgres: %v", err)
		os.Exit(1)
	}

	blobProvider, err := mediaProvider.NewS3Provider(&cfg.Storage)
	if err != nil {
		log.Error("Failed to create blob provider: %v", err)
		os.Exit(1)
	}
	mediaService := mediaServices.NewMediaService(blobProvider, &cfg.Media)

	blogRepo := blogRepository.NewPostgresBlogRepository(pgClient)
	commentRepo := commentRepository.NewPostgresCommentRepository(pgClient)
	submissionRepo := submissionRepository.NewPostgresSubmissionRepository(pgClient)

	blogService := blogServices.NewBlogService(blogRepo, mediaService)
	commentService := commentServices.NewCommentService(commentRepo)
	submissionService := submissionServices.NewSubmissionService(submissionRepo)

	group := app.Group(cfg.Server.BaseRoute + "/blog")

	// Submission routes are static under /blog and must register before the
	// blog module's parameterized /:id routes.
	submissions.RegisterRoutes(group, &submissions.SubmissionsHandlers{
		SubmissionHandler: submissionHandlers.NewSubmissionHandler(submissionService),
	}, cfg)

	comments.RegisterRoutes(group, &comments.CommentsHandlers{
		CommentHandler: commentHandlers.NewCommentHandler(commentService),
	})

	blog.RegisterRoutes(group, &blog.BlogHandlers{
		BlogHandler: blogHandlers.NewBlogHandler(blogService, cfg.Media),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info("Shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error("Server shutdown failed: %v", err)
		}
		if err := pgClient.Close(); err != nil {
			log.Error("Closing postgres pool failed: %v", err)
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("Starting %s on %s", cfg.App.Name, addr)
	if err := app.Listen(addr); err != nil {
		log.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}
