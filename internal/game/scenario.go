package game

import (
	apperrors "github.com/wfunc/fraud-game/internal/errors"
)

// PathTag 剧情路径标签
// 只作为决策轨迹的粗粒度标注，不参与分支判断。
type PathTag string

const (
	PathMain        PathTag = "main"        // 初始路径
	PathVigilant    PathTag = "vigilant"    // 警觉应对
	PathDelayed     PathTag = "delayed"     // 迟缓应对
	PathCompromised PathTag = "compromised" // 防线失守
	PathHero        PathTag = "hero"        // 英雄路线
	PathRedemption  PathTag = "redemption"  // 补救路线
)

// Choice 场景选项
type Choice struct {
	Text      string  `json:"text"`      // 选项描述
	Points    int     `json:"points"`    // 分数增量（可为负）
	Feedback  string  `json:"feedback"`  // 选择后的反馈文本
	NextScene int     `json:"nextScene"` // 下一场景ID
	Path      PathTag `json:"path"`      // 路径标签
}

// ScenarioNode 剧情场景节点
// 选项列表为空即为终结节点。
type ScenarioNode struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"` // 展示用表情符号
	Choices     []Choice `json:"choices"`
}

// IsTerminal 判断是否为终结节点
func (n *ScenarioNode) IsTerminal() bool {
	return len(n.Choices) == 0
}

// EntrySceneID 剧情入口场景ID
const EntrySceneID = 0

// Graph 剧情场景图
// 进程启动时构建一次，之后只读。
type Graph struct {
	nodes map[int]*ScenarioNode
}

// NewGraph 从场景列表构建剧情图
// 入口节点缺失、选项指向不存在的场景或没有终结节点时构建失败。
func NewGraph(scenarios []*ScenarioNode) (*Graph, error) {
	nodes := make(map[int]*ScenarioNode, len(scenarios))
	for _, node := range scenarios {
		nodes[node.ID] = node
	}

	// 入口节点必须存在
	if _, ok := nodes[EntrySceneID]; !ok {
		return nil, apperrors.New(apperrors.ErrGraphNoEntry)
	}

	// 所有选项目标必须可达，且至少存在一个终结节点
	hasTerminal := false
	for _, node := range nodes {
		if node.IsTerminal() {
			hasTerminal = true
			continue
		}
		for _, choice := range node.Choices {
			if _, ok := nodes[choice.NextScene]; !ok {
				return nil, apperrors.Newf(apperrors.ErrGraphDangling,
					"场景%d的选项指向不存在的场景%d", node.ID, choice.NextScene)
			}
		}
	}
	if !hasTerminal {
		return nil, apperrors.New(apperrors.ErrGraphNoTerminal)
	}

	return &Graph{nodes: nodes}, nil
}

// Node 根据ID获取场景节点
func (g *Graph) Node(id int) (*ScenarioNode, error) {
	node, ok := g.nodes[id]
	if !ok {
		return nil, apperrors.Newf(apperrors.ErrSceneNotFound, "场景ID: %d", id)
	}
	return node, nil
}

// IsTerminal 判断指定ID是否为终结节点
func (g *Graph) IsTerminal(id int) bool {
	node, ok := g.nodes[id]
	return ok && node.IsTerminal()
}

// Size 返回场景数量
func (g *Graph) Size() int {
	return len(g.nodes)
}
