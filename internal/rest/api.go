package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/arieldiaz/bitacora/blog/application"
)

func NewAPI(router *gin.Engine, service *application.PostService) {
	handler := &PostsHandler{service: service}

	router.GET("/", Health)

	posts := router.Group("/api/posts")
	{
		posts.GET("", handler.ListPosts)
		posts.GET("/:slug", handler.GetPost)
		posts.POST("", handler.CreatePost)
	}
}
