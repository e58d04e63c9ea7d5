package systems

// testSceneYAML 带一个前置道具和四个触发区域的探索场景
// 场景 1600x1800，玩家 100x100，出生点 (0, 1700)
const testSceneYAML = `
width: 1600
height: 1800
player:
  width: 100
  height: 100
  spawnX: 0
  spawnY: 1700
props:
  - {id: poster, x: 400, y: 1700, width: 80, height: 80}
  - {id: date, x: 1000, y: 1000, width: 80, height: 80}
  - {id: ale, x: 1400, y: 200, width: 80, height: 80}
  - {id: graymouse, x: 800, y: 1700, width: 60, height: 40}
pickups:
  - {id: pinkmouse, sound: sounds/squeak.mp3, x: 0, y: 1000, width: 50, height: 50}
effects:
  - {id: mouses, durationMs: 7000, x: 700, y: 1500, width: 200, height: 100}
  - {id: ticket, durationMs: 6000, x: 300, y: 1500, width: 200, height: 100}
  - {id: happy, durationMs: 6000, screen: true, x: 20, y: 20, width: 300, height: 80}
  - {id: freddy, durationMs: 5000, x: 1300, y: 100, width: 200, height: 200}
triggers:
  - {id: graymouse, threshold: 100, requires: pinkmouse, sound: sounds/mouse.mp3, effect: mouses}
  - {id: poster, effect: ticket}
  - {id: date, sound: sounds/mouse.mp3, effect: happy}
  - {id: ale, sound: sounds/urur.mp3, effect: freddy}
`
