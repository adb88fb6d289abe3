package recommend

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"

	"github.com/mensahub/backend/internal/recommend/schema"
)

// EngineServer is the server-side contract of the RecommendMeal operation.
type EngineServer interface {
	RecommendMeal(ctx context.Context, req *schema.RecommendationRequest) (*schema.RecommendationResponse, error)
}

// GRPCEngineServer adapts the pure Engine to the gRPC service surface.
type GRPCEngineServer struct {
	engine Engine
}

func NewGRPCEngineServer(engine Engine) *GRPCEngineServer {
	return &GRPCEngineServer{engine: engine}
}

func (s *GRPCEngineServer) RecommendMeal(ctx context.Context, req *schema.RecommendationRequest) (*schema.RecommendationResponse, error) {
	return s.engine.Recommend(req), nil
}

// RegisterEngineServer registers srv on a gRPC server under the service name
// from meal_recommendation.proto. The service desc is maintained by hand
// because the schema package carries its own wire codec.
func RegisterEngineServer(s *grpc.Server, srv EngineServer) {
	s.RegisterService(&engineServiceDesc, srv)
}

var engineServiceDesc = grpc.ServiceDesc{
	ServiceName: "mensa.MealRecommendationService",
	HandlerType: (*EngineServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RecommendMeal",
			Handler:    recommendMealHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "meal_recommendation.proto",
}

func recommendMealHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(schema.RecommendationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).RecommendMeal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: schema.RecommendMealMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngineServer).RecommendMeal(ctx, req.(*schema.RecommendationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RegisterHTTPRoutes exposes the engine over the text protocol: a JSON
// request/response exchange on POST /recommend, plus a health probe.
func RegisterHTTPRoutes(router *gin.Engine, engine Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "recommendation-engine"})
	})

	router.POST("/recommend", func(c *gin.Context) {
		var req schema.RecommendationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, engine.Recommend(&req))
	})
}
