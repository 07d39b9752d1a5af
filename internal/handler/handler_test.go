package handler

import (
	"adminbot/internal/service"
	"adminbot/internal/testutil"
)

// handlerMocks bundles the repository and gateway mocks behind a Handler
// built with real services
type handlerMocks struct {
	admins    *testutil.MockAdminRepository
	states    *testutil.MockStateRepository
	questions *testutil.MockQuestionRepository
	groups    *testutil.MockGroupRepository
	gw        *testutil.MockGateway
}

func newTestHandler() (*Handler, *handlerMocks) {
	m := &handlerMocks{
		admins:    new(testutil.MockAdminRepository),
		states:    new(testutil.MockStateRepository),
		questions: new(testutil.MockQuestionRepository),
		groups:    new(testutil.MockGroupRepository),
		gw:        new(testutil.MockGateway),
	}
	logger := testutil.NewTestLogger()

	broadcasts := service.NewBroadcastService(m.groups, m.states, m.gw, logger)
	questions := service.NewQuestionService(m.questions, m.groups, m.states, m.gw, logger)

	h := NewHandler(nil, m.admins, m.states, broadcasts, questions, logger)
	return h, m
}
