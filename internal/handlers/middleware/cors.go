package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS configura CORS para a aplicação.
// allowedOrigins é uma lista separada por vírgula; "*" libera qualquer origem.
func CORS(allowedOrigins string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins, allowAll := parseOrigins(allowedOrigins)
	if allowAll {
		// Credenciais não podem ser combinadas com "*": ecoamos a origem
		config.AllowOriginFunc = func(string) bool { return true }
	} else {
		config.AllowOrigins = origins
	}

	return cors.New(config)
}

// WebSocketOriginChecker aplica a mesma lista de origens do CORS ao upgrade
// websocket. Requisições sem Origin (clientes fora do browser) são aceitas.
func WebSocketOriginChecker(allowedOrigins string) func(r *http.Request) bool {
	origins, allowAll := parseOrigins(allowedOrigins)

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || allowAll {
			return true
		}
		for _, allowed := range origins {
			if strings.EqualFold(origin, allowed) {
				return true
			}
		}
		return false
	}
}

// parseOrigins separa a lista; lista vazia ou com "*" libera qualquer origem
func parseOrigins(allowedOrigins string) (origins []string, allowAll bool) {
	for _, o := range strings.Split(allowedOrigins, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
			continue
		case "*":
			allowAll = true
		}
		origins = append(origins, o)
	}
	return origins, allowAll || len(origins) == 0
}
