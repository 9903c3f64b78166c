// Package registry mounts named procedures under /api/rpc.
//
// Queries are served as GET /api/rpc/<name> with input in the query string;
// mutations as POST /api/rpc/<name> with a JSON body. Each procedure runs
// behind the guard chain of its tier.
package registry

import (
	"fmt"

	"placehub/internal/microservices/http-api/middleware"

	"github.com/gin-gonic/gin"
)

const BasePath = "/api/rpc"

type Kind int

const (
	Query Kind = iota
	Mutation
)

func (k Kind) String() string {
	if k == Mutation {
		return "mutation"
	}
	return "query"
}

type Procedure struct {
	Name    string
	Tier    middleware.Tier
	Kind    Kind
	Handler gin.HandlerFunc
	// Middleware runs after the guards, e.g. a rate limiter.
	Middleware []gin.HandlerFunc
}

// Provider is implemented by handlers that contribute procedures.
type Provider interface {
	Procedures() []Procedure
}

// Collect flattens the procedures of every provider, panicking on duplicate names.
func Collect(providers ...Provider) []Procedure {
	seen := make(map[string]bool)
	var procs []Procedure
	for _, p := range providers {
		for _, proc := range p.Procedures() {
			if seen[proc.Name] {
				panic(fmt.Sprintf("registry: duplicate procedure %q", proc.Name))
			}
			seen[proc.Name] = true
			procs = append(procs, proc)
		}
	}
	return procs
}

// Mount registers every procedure on rg, which should be rooted at BasePath.
func Mount(rg *gin.RouterGroup, procs []Procedure) {
	for _, proc := range procs {
		chain := make([]gin.HandlerFunc, 0, len(proc.Middleware)+4)
		chain = append(chain, named(proc.Name))
		chain = append(chain, middleware.Guards(proc.Tier)...)
		chain = append(chain, proc.Middleware...)
		chain = append(chain, proc.Handler)

		path := "/" + proc.Name
		if proc.Kind == Mutation {
			rg.POST(path, chain...)
		} else {
			rg.GET(path, chain...)
		}
	}
}

func named(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextProcedure, name)
		c.Next()
	}
}
