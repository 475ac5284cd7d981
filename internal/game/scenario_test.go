package game

import (
	"testing"

	apperrors "github.com/wfunc/fraud-game/internal/errors"
)

func TestNewGraphValidation(t *testing.T) {
	terminal := &ScenarioNode{ID: 1}
	entry := &ScenarioNode{ID: 0, Choices: []Choice{{NextScene: 1}}}

	tests := []struct {
		name      string
		scenarios []*ScenarioNode
		wantCode  apperrors.ErrorCode
	}{
		{
			name:      "有效的最小图",
			scenarios: []*ScenarioNode{entry, terminal},
			wantCode:  0,
		},
		{
			name:      "缺少入口节点",
			scenarios: []*ScenarioNode{terminal},
			wantCode:  apperrors.ErrGraphNoEntry,
		},
		{
			name: "选项指向不存在的场景",
			scenarios: []*ScenarioNode{
				{ID: 0, Choices: []Choice{{NextScene: 99}}},
				terminal,
			},
			wantCode: apperrors.ErrGraphDangling,
		},
		{
			name: "没有终结节点",
			scenarios: []*ScenarioNode{
				{ID: 0, Choices: []Choice{{NextScene: 1}}},
				{ID: 1, Choices: []Choice{{NextScene: 0}}},
			},
			wantCode: apperrors.ErrGraphNoTerminal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graph, err := NewGraph(tt.scenarios)
			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("期望构建成功，得到错误: %v", err)
				}
				if graph.Size() != len(tt.scenarios) {
					t.Errorf("场景数量 = %d，期望 %d", graph.Size(), len(tt.scenarios))
				}
				return
			}
			if !apperrors.Is(err, tt.wantCode) {
				t.Errorf("错误码 = %d，期望 %d (err: %v)", apperrors.GetCode(err), tt.wantCode, err)
			}
		})
	}
}

func TestDefaultGraphContent(t *testing.T) {
	graph, err := NewDefaultGraph()
	if err != nil {
		t.Fatalf("默认剧情图构建失败: %v", err)
	}

	if graph.Size() != 12 {
		t.Errorf("场景数量 = %d，期望 12", graph.Size())
	}

	entry, err := graph.Node(EntrySceneID)
	if err != nil {
		t.Fatalf("入口场景不存在: %v", err)
	}
	if len(entry.Choices) != 4 {
		t.Errorf("入口场景选项数 = %d，期望 4", len(entry.Choices))
	}

	if !graph.IsTerminal(11) {
		t.Error("场景11应为终结节点")
	}

	// 除终结节点外每个场景都有4个选项
	for id := 0; id <= 10; id++ {
		node, err := graph.Node(id)
		if err != nil {
			t.Fatalf("场景%d不存在: %v", id, err)
		}
		if len(node.Choices) != 4 {
			t.Errorf("场景%d选项数 = %d，期望 4", id, len(node.Choices))
		}
	}
}

func TestDefaultGraphReachability(t *testing.T) {
	graph, err := NewDefaultGraph()
	if err != nil {
		t.Fatalf("默认剧情图构建失败: %v", err)
	}

	// 从入口广度优先遍历，所有场景都应可达
	visited := map[int]bool{}
	queue := []int{EntrySceneID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true

		node, err := graph.Node(id)
		if err != nil {
			t.Fatalf("场景%d不存在: %v", id, err)
		}
		for _, c := range node.Choices {
			queue = append(queue, c.NextScene)
		}
	}

	if len(visited) != graph.Size() {
		t.Errorf("可达场景数 = %d，期望 %d", len(visited), graph.Size())
	}
}
