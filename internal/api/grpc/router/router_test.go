package router

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthgrpc "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dtroode/fingerprint-server/internal/api/grpc/apiv1"
	"github.com/dtroode/fingerprint-server/internal/mocks"
	"github.com/dtroode/fingerprint-server/internal/model"
	"github.com/dtroode/fingerprint-server/internal/testutil"
)

func serve(t *testing.T, r *Router) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := r.Register()
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	r := New(mocks.NewFingerprintService(t), mocks.NewAuditRunner(t), nil, testutil.MakeNoopLogger())
	s := r.Register()
	require.NotNil(t, s)

	info := s.GetServiceInfo()
	assert.Contains(t, info, apiv1.FingerprintServiceName)
	assert.Contains(t, info, apiv1.AdminServiceName)
	assert.NotContains(t, info, healthgrpc.Health_ServiceDesc.ServiceName)
}

func TestRouter_Identify(t *testing.T) {
	t.Parallel()

	svc := mocks.NewFingerprintService(t)
	svc.On("Identify", mock.Anything, model.IdentificationRequest{Sample: []byte("probe"), CompanyID: 1}).
		Return(model.Identity{TemplateID: 7, EmployeeID: 2, Finger: model.FingerLeftIndex, CompanyID: 1, Name: "Ana"}, true, nil).Once()

	conn := serve(t, New(svc, mocks.NewAuditRunner(t), nil, testutil.MakeNoopLogger()))

	resp, err := apiv1.NewFingerprintClient(conn).Identify(context.Background(), &apiv1.IdentifyRequest{Sample: []byte("probe"), CompanyID: 1})
	require.NoError(t, err)
	require.NotNil(t, resp.Identity)
	assert.Equal(t, int64(2), resp.Identity.EmployeeID)
	assert.Equal(t, "LEFT_INDEX", resp.Identity.Finger)
	assert.Equal(t, "Ana", resp.Identity.Name)
}

func TestRouter_RecoversPanic(t *testing.T) {
	t.Parallel()

	svc := mocks.NewFingerprintService(t)
	svc.On("Identify", mock.Anything, mock.Anything).Panic("matcher exploded").Once()

	conn := serve(t, New(svc, mocks.NewAuditRunner(t), nil, testutil.MakeNoopLogger()))

	_, err := apiv1.NewFingerprintClient(conn).Identify(context.Background(), &apiv1.IdentifyRequest{Sample: []byte("probe"), CompanyID: 1})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestRouter_AuditDuplicates(t *testing.T) {
	t.Parallel()

	runner := mocks.NewAuditRunner(t)
	runner.On("Run", mock.Anything).Return(model.AuditReport{Outcome: model.AuditOutcomeClean, Templates: 3, Comparisons: 3}, nil).Once()

	conn := serve(t, New(mocks.NewFingerprintService(t), runner, nil, testutil.MakeNoopLogger()))

	resp, err := apiv1.NewAdminClient(conn).AuditDuplicates(context.Background(), &apiv1.AuditDuplicatesRequest{})
	require.NoError(t, err)
	assert.False(t, resp.Found)
	assert.Equal(t, "clean", resp.Outcome)
	assert.Equal(t, 3, resp.Comparisons)
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	hs := health.NewServer()
	hs.SetServingStatus(apiv1.FingerprintServiceName, healthgrpc.HealthCheckResponse_SERVING)

	conn := serve(t, New(mocks.NewFingerprintService(t), mocks.NewAuditRunner(t), hs, testutil.MakeNoopLogger()))

	resp, err := healthgrpc.NewHealthClient(conn).Check(context.Background(), &healthgrpc.HealthCheckRequest{Service: apiv1.FingerprintServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthgrpc.HealthCheckResponse_SERVING, resp.Status)
}
