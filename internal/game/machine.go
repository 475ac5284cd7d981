package game

import (
	"sync"
	"time"

	apperrors "github.com/wfunc/fraud-game/internal/errors"
)

// Machine 在Session之上提供并发保护和节奏控制
// 每次选择后进入揭示期（展示反馈文本），揭示期内拒绝新的输入；
// 揭示定时器带代数标记，Reset后到期的旧定时器不会产生任何效果。
type Machine struct {
	mu          sync.Mutex
	session     *Session
	graph       *Graph
	revealDelay time.Duration

	pending     bool
	revealTimer *time.Timer
	generation  uint64

	lastActivity time.Time

	// onReveal 揭示期结束时回调（持锁外调用），可为nil
	onReveal func()
}

// NewMachine 创建会话状态机
// revealDelay为0时选择立即揭示，不设定时器。
func NewMachine(graph *Graph, revealDelay time.Duration) *Machine {
	return &Machine{
		session:      NewSession(),
		graph:        graph,
		revealDelay:  revealDelay,
		lastActivity: time.Now(),
	}
}

// SetOnReveal 设置揭示回调
func (m *Machine) SetOnReveal(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onReveal = fn
}

// Start 启动游戏
func (m *Machine) Start(teamName, department string, members []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastActivity = time.Now()
	return m.session.Start(teamName, department, members, time.Now())
}

// Choose 应用当前场景的一个选项
// 揭示期内返回ErrChoicePending；应用成功后开始新的揭示期。
func (m *Machine) Choose(choiceIndex int) (*Choice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastActivity = time.Now()

	if m.pending {
		return nil, apperrors.New(apperrors.ErrChoicePending)
	}

	choice, err := m.session.ApplyChoice(m.graph, choiceIndex, time.Now())
	if err != nil {
		return nil, err
	}

	if m.revealDelay > 0 {
		m.pending = true
		gen := m.generation
		m.revealTimer = time.AfterFunc(m.revealDelay, func() {
			m.reveal(gen)
		})
	}
	return choice, nil
}

// reveal 揭示期结束
// 代数不匹配说明会话在定时器到期前已被重置，直接丢弃。
func (m *Machine) reveal(gen uint64) {
	m.mu.Lock()
	if gen != m.generation {
		m.mu.Unlock()
		return
	}
	m.pending = false
	m.revealTimer = nil
	fn := m.onReveal
	m.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Reset 重置会话并取消进行中的揭示定时器
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generation++
	if m.revealTimer != nil {
		m.revealTimer.Stop()
		m.revealTimer = nil
	}
	m.pending = false
	m.lastActivity = time.Now()
	m.session.Reset()
}

// Pending 返回是否处于揭示期
func (m *Machine) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending
}

// SetSaveStatus 更新结果保存状态
func (m *Machine) SetSaveStatus(status SaveStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session.SaveStatus = status
}

// LastActivity 返回最近一次操作时间（闲置清理用）
func (m *Machine) LastActivity() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastActivity
}

// Snapshot 返回会话状态的副本
func (m *Machine) Snapshot() Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := *m.session
	snap.TeamMembers = append([]string(nil), m.session.TeamMembers...)
	snap.Decisions = append([]Decision(nil), m.session.Decisions...)
	return snap
}

// Scene 返回当前场景节点
func (m *Machine) Scene() (*ScenarioNode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.graph.Node(m.session.Scene)
}
